package databaseaccess

import (
	"fmt"
	"path/filepath"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
)

func NewDatabase(filePath string) (core.Database, error) {
	if err := common.CreateDirectoryIfNotExists(filepath.Dir(filePath), 0770); err != nil {
		return nil, fmt.Errorf("failed to create directory for bridge database: %w", err)
	}

	db := &BBoltDatabase{}
	if err := db.Init(filePath); err != nil {
		return nil, err
	}

	return db, nil
}
