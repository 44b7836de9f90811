package databaseaccess

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
)

var (
	eventsBucket          = []byte("events")
	processedLedgerBucket = []byte("processedLedger")

	lastProcessedLedgerKey = []byte("last")
)

type BBoltDatabase struct {
	db *bbolt.DB
}

var _ core.Database = (*BBoltDatabase)(nil)

func (bd *BBoltDatabase) Init(filePath string) error {
	db, err := bbolt.Open(filePath, 0660, nil)
	if err != nil {
		return fmt.Errorf("could not open db: %w", err)
	}

	bd.db = db

	return db.Update(func(tx *bbolt.Tx) error {
		for _, bn := range [][]byte{eventsBucket, processedLedgerBucket} {
			_, err := tx.CreateBucketIfNotExists(bn)
			if err != nil {
				return fmt.Errorf("could not bucket: %s, err: %w", string(bn), err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) Close() error {
	return bd.db.Close()
}

func (bd *BBoltDatabase) SaveEvents(events []oracleCore.ContractEvent) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		for _, event := range events {
			bytes, err := cbor.Marshal(event)
			if err != nil {
				return fmt.Errorf("could not marshal event: %w", err)
			}

			if err := tx.Bucket(eventsBucket).Put([]byte(event.ID), bytes); err != nil {
				return fmt.Errorf("event write error: %w", err)
			}
		}

		return nil
	})
}

func (bd *BBoltDatabase) GetEvent(id string) (*oracleCore.ContractEvent, error) {
	var result *oracleCore.ContractEvent

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(eventsBucket).Get([]byte(id))
		if bytes == nil {
			return nil
		}

		result = &oracleCore.ContractEvent{}
		if err := cbor.Unmarshal(bytes, result); err != nil {
			return fmt.Errorf("could not unmarshal event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (bd *BBoltDatabase) GetAllEvents() ([]oracleCore.ContractEvent, error) {
	var result []oracleCore.ContractEvent

	err := bd.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(eventsBucket).ForEach(func(_, v []byte) error {
			var event oracleCore.ContractEvent
			if err := cbor.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("could not unmarshal event: %w", err)
			}

			result = append(result, event)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (bd *BBoltDatabase) AddLastProcessedLedger(ledger uint32) error {
	return bd.db.Update(func(tx *bbolt.Tx) error {
		bytes := make([]byte, 4)
		binary.BigEndian.PutUint32(bytes, ledger)

		if err := tx.Bucket(processedLedgerBucket).Put(lastProcessedLedgerKey, bytes); err != nil {
			return fmt.Errorf("last processed ledger write error: %w", err)
		}

		return nil
	})
}

func (bd *BBoltDatabase) GetLastProcessedLedger() (uint32, error) {
	var result uint32

	err := bd.db.View(func(tx *bbolt.Tx) error {
		bytes := tx.Bucket(processedLedgerBucket).Get(lastProcessedLedgerKey)
		if bytes == nil {
			return nil
		}

		if len(bytes) != 4 {
			return fmt.Errorf("corrupted last processed ledger value")
		}

		result = binary.BigEndian.Uint32(bytes)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return result, nil
}
