package processor

import (
	"encoding/json"
	"strconv"

	"github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/hashicorp/go-hclog"
)

// IntentsProcessorImpl turns raw getEvents batches into transfer intents.
// The batch is externally controlled data: every field extraction is
// independently optional, and a malformed event is dropped, never escalated.
type IntentsProcessorImpl struct {
	logger hclog.Logger
}

var _ core.IntentExtractor = (*IntentsProcessorImpl)(nil)

func NewIntentsProcessor(logger hclog.Logger) *IntentsProcessorImpl {
	return &IntentsProcessorImpl{logger: logger}
}

func (p *IntentsProcessorImpl) ExtractIntents(
	rawBatch []byte, destChainKey string,
) ([]core.TransferIntent, []core.ContractEvent) {
	var parsed struct {
		Result struct {
			Events []json.RawMessage `json:"events"`
		} `json:"result"`
	}

	if err := json.Unmarshal(rawBatch, &parsed); err != nil {
		p.logger.Warn("failed to parse event batch, skipping", "err", err)

		return nil, nil
	}

	var (
		intents []core.TransferIntent
		events  []core.ContractEvent
	)

	for _, rawEvent := range parsed.Result.Events {
		var eventMap map[string]interface{}
		if err := json.Unmarshal(rawEvent, &eventMap); err != nil {
			p.logger.Warn("skipping malformed event", "err", err)

			continue
		}

		event := contractEventFrom(eventMap, rawEvent)
		events = append(events, event)

		intent, ok := p.intentFrom(eventMap, destChainKey)
		if !ok {
			p.logger.Debug("event yielded no transfer intent", "id", event.ID)

			continue
		}

		p.logger.Info("extracted transfer intent",
			"id", event.ID, "recipient", intent.RecipientAddress, "amount", intent.AmountStroops)

		intents = append(intents, intent)
	}

	return intents, events
}

func (p *IntentsProcessorImpl) intentFrom(
	eventMap map[string]interface{}, destChainKey string,
) (core.TransferIntent, bool) {
	valueJSON, ok := eventMap["valueJson"].(map[string]interface{})
	if !ok {
		return core.TransferIntent{}, false
	}

	entries, ok := valueJSON["map"].([]interface{})
	if !ok {
		return core.TransferIntent{}, false
	}

	var (
		recipient string
		amount    uint64
	)

	for _, entry := range entries {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		switch symbolKey(item) {
		case "in_amount":
			amount = amountFromVal(fieldOf(item, "val", "i128"))
		case "recipient_address":
			recipient, _ = fieldOf(item, "val", "string").(string)
		}
	}

	if recipient == "" || amount == 0 {
		return core.TransferIntent{}, false
	}

	return core.TransferIntent{
		RecipientAddress:    recipient,
		AmountStroops:       amount,
		DestinationChainKey: destChainKey,
	}, true
}

func contractEventFrom(eventMap map[string]interface{}, raw json.RawMessage) core.ContractEvent {
	event := core.ContractEvent{
		ID:         stringOf(eventMap, "id"),
		TxHash:     stringOf(eventMap, "txHash"),
		ContractID: stringOf(eventMap, "contractId"),
		Value:      raw,
	}

	if ledger, ok := eventMap["ledger"].(float64); ok && ledger >= 0 {
		event.Ledger = uint32(ledger)
	}

	if topics, ok := eventMap["topic"].([]interface{}); ok {
		for _, topic := range topics {
			if s, ok := topic.(string); ok {
				event.Topic = append(event.Topic, s)
			}
		}
	}

	return event
}

// amountFromVal accepts the three shapes the i128 amount arrives in: a
// decimal string, a plain number or a {lo: number} object. Anything else
// counts as zero, which suppresses intent emission.
func amountFromVal(value interface{}) uint64 {
	switch v := value.(type) {
	case string:
		amount, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}

		return amount
	case float64:
		if v < 0 {
			return 0
		}

		return uint64(v)
	case map[string]interface{}:
		if lo, exists := v["lo"]; exists {
			return amountFromVal(lo)
		}

		return 0
	default:
		return 0
	}
}

func symbolKey(item map[string]interface{}) string {
	key, ok := item["key"].(map[string]interface{})
	if !ok {
		return ""
	}

	symbol, _ := key["symbol"].(string)

	return symbol
}

func fieldOf(item map[string]interface{}, keys ...string) interface{} {
	var current interface{} = item

	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}

		current = m[key]
	}

	return current
}

func stringOf(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)

	return s
}
