package bridge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxRecord(t *testing.T) {
	t.Parallel()

	t.Run("empty record", func(t *testing.T) {
		t.Parallel()

		record := &TxRecord{}
		require.Empty(t, record.Latest())
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()

		record := &TxRecord{}
		record.Set("0xaaa")
		record.Set("0xbbb")

		require.Equal(t, "0xbbb", record.Latest())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		record := &TxRecord{}

		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(2)

			go func() {
				defer wg.Done()

				record.Set("0xccc")
			}()

			go func() {
				defer wg.Done()

				_ = record.Latest()
			}()
		}

		wg.Wait()

		require.Equal(t, "0xccc", record.Latest())
	})
}
