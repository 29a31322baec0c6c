package progress

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(&out, "Uploaded", 80)
	start := tracker.started
	tracker.now = func() time.Time { return start.Add(2*time.Hour + 3*time.Minute) }

	tracker.Done("a.txt")
	tracker.Failed("b.txt", errors.New("boom"))
	tracker.Summary()

	done, failed := tracker.Counts()
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, failed)
	assert.Equal(t,
		"Uploaded a.txt\nFailed b.txt: boom\nUploaded 1 item(s), 1 failed, elapsed: 0 days 2 hours 3 mins\n",
		out.String(),
	)
}

func TestTracker_Concurrent(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(&out, "Downloaded", 80)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Done("file")
		}()
	}
	wg.Wait()

	done, _ := tracker.Counts()
	assert.Equal(t, 50, done)
}
