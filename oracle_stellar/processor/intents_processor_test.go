package processor

import (
	"fmt"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestExtractIntents(t *testing.T) {
	t.Parallel()

	processor := NewIntentsProcessor(hclog.NewNullLogger())

	eventWithAmount := func(amountJSON string) []byte {
		return []byte(fmt.Sprintf(`{
			"result": {
				"events": [
					{
						"id": "0004-01",
						"txHash": "abc123",
						"contractId": "CDTA5IYG",
						"ledger": 19888,
						"topic": ["AAAADwAAAAdzd2FwcGVk"],
						"valueJson": {
							"map": [
								{"key": {"symbol": "dest_chain"}, "val": {"bytes": "2105"}},
								{"key": {"symbol": "in_amount"}, "val": {"i128": %s}},
								{"key": {"symbol": "recipient_address"},
									"val": {"string": "0x99a79158A40E4BEF8Beb3AcFAE893e62C45034E8"}}
							]
						}
					}
				]
			}
		}`, amountJSON))
	}

	t.Run("amount as decimal string", func(t *testing.T) {
		t.Parallel()

		intents, events := processor.ExtractIntents(eventWithAmount(`"110000000"`), "8453")

		require.Len(t, intents, 1)
		require.Len(t, events, 1)
		require.Equal(t, uint64(110000000), intents[0].AmountStroops)
		require.Equal(t, "0x99a79158A40E4BEF8Beb3AcFAE893e62C45034E8", intents[0].RecipientAddress)
		require.Equal(t, "8453", intents[0].DestinationChainKey)
		require.Equal(t, "0004-01", events[0].ID)
		require.Equal(t, uint32(19888), events[0].Ledger)
	})

	t.Run("amount as bare number", func(t *testing.T) {
		t.Parallel()

		intents, _ := processor.ExtractIntents(eventWithAmount(`25000000`), "17000")

		require.Len(t, intents, 1)
		require.Equal(t, uint64(25000000), intents[0].AmountStroops)
	})

	t.Run("amount as lo object", func(t *testing.T) {
		t.Parallel()

		intents, _ := processor.ExtractIntents(eventWithAmount(`{"lo": 70000000, "hi": 0}`), "17000")

		require.Len(t, intents, 1)
		require.Equal(t, uint64(70000000), intents[0].AmountStroops)
	})

	t.Run("missing recipient yields event but no intent", func(t *testing.T) {
		t.Parallel()

		batch := []byte(`{
			"result": {
				"events": [
					{
						"id": "0004-02",
						"valueJson": {
							"map": [
								{"key": {"symbol": "in_amount"}, "val": {"i128": "5000000"}}
							]
						}
					}
				]
			}
		}`)

		intents, events := processor.ExtractIntents(batch, "17000")

		require.Empty(t, intents)
		require.Len(t, events, 1)
	})

	t.Run("zero amount yields no intent", func(t *testing.T) {
		t.Parallel()

		intents, events := processor.ExtractIntents(eventWithAmount(`"0"`), "17000")

		require.Empty(t, intents)
		require.Len(t, events, 1)
	})

	t.Run("unparseable amount yields no intent", func(t *testing.T) {
		t.Parallel()

		intents, _ := processor.ExtractIntents(eventWithAmount(`"not-a-number"`), "17000")

		require.Empty(t, intents)
	})

	t.Run("one well formed event among malformed", func(t *testing.T) {
		t.Parallel()

		batch := []byte(`{
			"result": {
				"events": [
					{"id": "0004-03", "valueJson": "unexpected-shape"},
					{
						"id": "0004-04",
						"valueJson": {
							"map": [
								{"key": {"symbol": "in_amount"}, "val": {"i128": "42000000"}},
								{"key": {"symbol": "recipient_address"},
									"val": {"string": "0x99a79158A40E4BEF8Beb3AcFAE893e62C45034E8"}}
							]
						}
					},
					{"id": "0004-05", "valueJson": {"map": []}}
				]
			}
		}`)

		intents, events := processor.ExtractIntents(batch, "8453")

		require.Len(t, intents, 1)
		require.Len(t, events, 3)
		require.Equal(t, uint64(42000000), intents[0].AmountStroops)
	})

	t.Run("garbage batch", func(t *testing.T) {
		t.Parallel()

		intents, events := processor.ExtractIntents([]byte(`not json`), "17000")

		require.Empty(t, intents)
		require.Empty(t, events)
	})
}
