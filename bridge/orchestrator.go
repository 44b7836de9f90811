package bridge

import (
	"context"
	"fmt"
	"sync"

	goethereum "github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	ethrpchelper "github.com/Ethernal-Tech/stellar-evm-bridge/eth/rpchelper"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/telemetry"
)

// OrchestratorImpl drives one transfer intent end to end: price the amount,
// fetch the nonce, assemble and sign the transaction, broadcast it. The
// submitLock serializes the nonce-fetch-to-broadcast window so concurrent
// intents cannot reuse a nonce.
type OrchestratorImpl struct {
	config       *core.BridgeConfig
	signer       core.Signer
	nonceService ethrpchelper.INonceService
	submitter    ethrpchelper.ISubmitter
	rateFetcher  core.RateConverter
	txRecord     *TxRecord
	logger       hclog.Logger

	submitLock sync.Mutex
}

var _ core.Orchestrator = (*OrchestratorImpl)(nil)

func NewOrchestrator(
	config *core.BridgeConfig,
	signer core.Signer,
	nonceService ethrpchelper.INonceService,
	submitter ethrpchelper.ISubmitter,
	rateFetcher core.RateConverter,
	logger hclog.Logger,
) *OrchestratorImpl {
	return &OrchestratorImpl{
		config:       config,
		signer:       signer,
		nonceService: nonceService,
		submitter:    submitter,
		rateFetcher:  rateFetcher,
		txRecord:     &TxRecord{},
		logger:       logger,
	}
}

func (o *OrchestratorImpl) ProcessIntent(
	ctx context.Context, intent oracleCore.TransferIntent,
) core.IntentResult {
	result := core.IntentResult{Intent: intent}

	txHash, degraded, err := o.executeIntent(ctx, intent)
	result.TxHash = txHash
	result.Degraded = degraded
	result.Err = err

	if err != nil {
		telemetry.UpdateBridgeSubmitFailedCounter(intent.DestinationChainKey, 1)
		o.logger.Error("intent processing failed",
			"recipient", intent.RecipientAddress, "amount", intent.AmountStroops, "err", err)

		return result
	}

	telemetry.UpdateBridgeSubmitSucceededCounter(intent.DestinationChainKey, 1)
	o.logger.Info("intent processed", "txHash", txHash, "degraded", degraded)

	return result
}

// ProcessBatch runs every intent and collects one result per intent. A
// failed intent never aborts the remainder of the batch.
func (o *OrchestratorImpl) ProcessBatch(
	ctx context.Context, intents []oracleCore.TransferIntent,
) []core.IntentResult {
	results := make([]core.IntentResult, 0, len(intents))
	for _, intent := range intents {
		results = append(results, o.ProcessIntent(ctx, intent))
	}

	return results
}

func (o *OrchestratorImpl) DeriveSignerAddress(
	ctx context.Context, derivationPath [][]byte,
) (string, error) {
	pubKey, err := o.signer.PublicKey(ctx, o.config.KeyID, derivationPath)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve signer public key: %w", err)
	}

	addr, err := eth.DeriveAddress(pubKey)
	if err != nil {
		return "", err
	}

	return eth.ChecksumAddress(addr), nil
}

func (o *OrchestratorImpl) LatestTxHash() string {
	return o.txRecord.Latest()
}

func (o *OrchestratorImpl) executeIntent(
	ctx context.Context, intent oracleCore.TransferIntent,
) (string, bool, error) {
	if !goethereum.IsHexAddress(intent.RecipientAddress) {
		return "", false, core.ErrInvalidRecipient
	}

	if intent.AmountStroops == 0 {
		return "", false, core.ErrZeroAmount
	}

	profile := eth.ResolveChainProfile(intent.DestinationChainKey)

	valueWei, degraded := o.rateFetcher.XLMToWei(ctx, intent.AmountStroops)
	if degraded {
		telemetry.UpdateBridgeDegradedRateCounter(intent.DestinationChainKey, 1)
	}

	derivationPath := o.config.DerivationPathBytes()

	pubKey, err := o.signer.PublicKey(ctx, o.config.KeyID, derivationPath)
	if err != nil {
		return "", degraded, fmt.Errorf("failed to retrieve signer public key: %w", err)
	}

	senderAddr, err := eth.DeriveAddress(pubKey)
	if err != nil {
		return "", degraded, err
	}

	o.submitLock.Lock()
	defer o.submitLock.Unlock()

	nonce, err := o.nonceService.NextNonce(ctx, senderAddr, profile)
	if err != nil {
		return "", degraded, err
	}

	gas := profile.Gas
	unsignedTx := eth.UnsignedTx{
		ChainID:              profile.ChainID,
		Nonce:                nonce,
		GasLimit:             gas.GasLimit,
		MaxFeePerGas:         gas.MaxFeePerGas,
		MaxPriorityFeePerGas: gas.MaxPriorityFeePerGas,
		To:                   goethereum.HexToAddress(intent.RecipientAddress),
		Value:                valueWei,
	}

	encoded, err := eth.EncodeUnsigned(unsignedTx)
	if err != nil {
		return "", degraded, err
	}

	digest := eth.Digest(encoded)

	r, s, err := o.signer.SignDigest(ctx, digest, o.config.KeyID, derivationPath)
	if err != nil {
		return "", degraded, &core.SigningError{Cause: err}
	}

	parity, err := eth.RecoverParity(digest, r, s, pubKey)
	if err != nil {
		return "", degraded, err
	}

	signedTx, err := eth.EncodeSigned(unsignedTx, r, s, parity)
	if err != nil {
		return "", degraded, err
	}

	o.logger.Debug("submitting transaction",
		"chain", profile.Key, "nonce", nonce, "value", valueWei)

	txHash, err := o.submitter.Submit(ctx, common.EncodeHex(signedTx), profile)
	if err != nil {
		return "", degraded, err
	}

	o.txRecord.Set(txHash)

	return txHash, degraded, nil
}
