package app

import (
	"fmt"

	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// NamespaceUseCase returns the namespace use case instance.
func (c *Container) NamespaceUseCase() (objectStorageUseCase.NamespaceUseCase, error) {
	var err error
	c.namespaceUseCaseInit.Do(func() {
		c.namespaceUseCase, err = c.initNamespaceUseCase()
		if err != nil {
			c.initErrors["namespaceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["namespaceUseCase"]; exists {
		return nil, storedErr
	}
	return c.namespaceUseCase, nil
}

// BucketUseCase returns the bucket use case instance.
func (c *Container) BucketUseCase() (objectStorageUseCase.BucketUseCase, error) {
	var err error
	c.bucketUseCaseInit.Do(func() {
		c.bucketUseCase, err = c.initBucketUseCase()
		if err != nil {
			c.initErrors["bucketUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bucketUseCase"]; exists {
		return nil, storedErr
	}
	return c.bucketUseCase, nil
}

// ObjectUseCase returns the object use case instance.
func (c *Container) ObjectUseCase() (objectStorageUseCase.ObjectUseCase, error) {
	var err error
	c.objectUseCaseInit.Do(func() {
		c.objectUseCase, err = c.initObjectUseCase()
		if err != nil {
			c.initErrors["objectUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["objectUseCase"]; exists {
		return nil, storedErr
	}
	return c.objectUseCase, nil
}

// RetentionRuleUseCase returns the retention rule use case instance.
func (c *Container) RetentionRuleUseCase() (objectStorageUseCase.RetentionRuleUseCase, error) {
	var err error
	c.retentionRuleUseCaseInit.Do(func() {
		c.retentionRuleUseCase, err = c.initRetentionRuleUseCase()
		if err != nil {
			c.initErrors["retentionRuleUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["retentionRuleUseCase"]; exists {
		return nil, storedErr
	}
	return c.retentionRuleUseCase, nil
}

// ReplicationUseCase returns the replication use case instance.
func (c *Container) ReplicationUseCase() (objectStorageUseCase.ReplicationUseCase, error) {
	var err error
	c.replicationUseCaseInit.Do(func() {
		c.replicationUseCase, err = c.initReplicationUseCase()
		if err != nil {
			c.initErrors["replicationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["replicationUseCase"]; exists {
		return nil, storedErr
	}
	return c.replicationUseCase, nil
}

// BulkUseCase returns the bulk transfer use case instance.
func (c *Container) BulkUseCase() (objectStorageUseCase.BulkUseCase, error) {
	var err error
	c.bulkUseCaseInit.Do(func() {
		c.bulkUseCase, err = c.initBulkUseCase()
		if err != nil {
			c.initErrors["bulkUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bulkUseCase"]; exists {
		return nil, storedErr
	}
	return c.bulkUseCase, nil
}

func (c *Container) initNamespaceUseCase() (objectStorageUseCase.NamespaceUseCase, error) {
	client, err := c.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get client for namespace use case: %w", err)
	}
	return objectStorageUseCase.NewNamespaceUseCase(client), nil
}

func (c *Container) initBucketUseCase() (objectStorageUseCase.BucketUseCase, error) {
	client, err := c.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get client for bucket use case: %w", err)
	}
	return objectStorageUseCase.NewBucketUseCase(client), nil
}

func (c *Container) initObjectUseCase() (objectStorageUseCase.ObjectUseCase, error) {
	client, err := c.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get client for object use case: %w", err)
	}

	baseUseCase := objectStorageUseCase.NewObjectUseCase(client)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for object use case: %w", err)
		}
		return objectStorageUseCase.NewObjectUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initRetentionRuleUseCase() (objectStorageUseCase.RetentionRuleUseCase, error) {
	client, err := c.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get client for retention rule use case: %w", err)
	}
	return objectStorageUseCase.NewRetentionRuleUseCase(client), nil
}

func (c *Container) initReplicationUseCase() (objectStorageUseCase.ReplicationUseCase, error) {
	client, err := c.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to get client for replication use case: %w", err)
	}
	return objectStorageUseCase.NewReplicationUseCase(client), nil
}

func (c *Container) initBulkUseCase() (objectStorageUseCase.BulkUseCase, error) {
	objects, err := c.ObjectUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get object use case for bulk use case: %w", err)
	}
	return objectStorageUseCase.NewBulkUseCase(objects, objectStorageUseCase.BulkConfig{
		Parallelism:       c.config.BulkParallelism,
		RequestsPerSecond: c.config.BulkRequestsPerSec,
		Burst:             c.config.BulkBurst,
	}), nil
}
