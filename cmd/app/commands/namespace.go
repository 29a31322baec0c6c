package commands

import (
	"context"
	"io"

	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// RunGetNamespace prints the namespace of the tenancy or of a compartment.
func RunGetNamespace(
	ctx context.Context,
	namespaceUseCase objectStorageUseCase.NamespaceUseCase,
	compartmentID string,
	writer io.Writer,
) error {
	ns, err := namespaceUseCase.Get(ctx, compartmentID)
	if err != nil {
		return err
	}
	return writeData(writer, ns)
}

// RunGetNamespaceMetadata prints the default compartments of a namespace.
func RunGetNamespaceMetadata(
	ctx context.Context,
	namespaceUseCase objectStorageUseCase.NamespaceUseCase,
	namespace string,
	writer io.Writer,
) error {
	md, err := namespaceUseCase.GetMetadata(ctx, namespace)
	if err != nil {
		return err
	}
	return writeData(writer, md)
}
