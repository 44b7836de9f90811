package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	apiCore "github.com/Ethernal-Tech/stellar-evm-bridge/api/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/api/model/request"
	"github.com/Ethernal-Tech/stellar-evm-bridge/api/model/response"
	apiUtils "github.com/Ethernal-Tech/stellar-evm-bridge/api/utils"
	bridgeCore "github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
)

type BridgeControllerImpl struct {
	appConfig    *bridgeCore.AppConfig
	orchestrator bridgeCore.Orchestrator
	db           bridgeCore.Database
	logger       hclog.Logger
}

var _ apiCore.APIController = (*BridgeControllerImpl)(nil)

func NewBridgeController(
	appConfig *bridgeCore.AppConfig,
	orchestrator bridgeCore.Orchestrator,
	db bridgeCore.Database,
	logger hclog.Logger,
) *BridgeControllerImpl {
	return &BridgeControllerImpl{
		appConfig:    appConfig,
		orchestrator: orchestrator,
		db:           db,
		logger:       logger,
	}
}

func (*BridgeControllerImpl) GetPathPrefix() string {
	return "Bridge"
}

func (c *BridgeControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "GetAddress", Method: http.MethodGet, Handler: c.getAddress, APIKeyAuth: true},
		{Path: "GetLatestTxHash", Method: http.MethodGet, Handler: c.getLatestTxHash, APIKeyAuth: true},
		{Path: "GetEvents", Method: http.MethodGet, Handler: c.getEvents, APIKeyAuth: true},
		{Path: "GetEvent", Method: http.MethodGet, Handler: c.getEvent, APIKeyAuth: true},
		{Path: "Submit", Method: http.MethodPost, Handler: c.submit, APIKeyAuth: true},
	}
}

// @Summary Get the signer address on the destination chain
// @Description Returns the checksummed evm address derived from the signer public key. An optional caller query parameter scopes the derivation path.
// @Tags Bridge
// @Produce json
// @Success 200 {object} response.AddressResponse "OK"
// @Failure 401 {object} response.ErrorResponse "Unauthorized – API key missing or invalid."
// @Security ApiKeyAuth
// @Router /Bridge/GetAddress [get]
func (c *BridgeControllerImpl) getAddress(w http.ResponseWriter, r *http.Request) {
	derivationPath := c.appConfig.Bridge.DerivationPathBytes()
	if caller := r.URL.Query().Get("caller"); caller != "" {
		derivationPath = [][]byte{[]byte(caller)}
	}

	address, err := c.orchestrator.DeriveSignerAddress(r.Context(), derivationPath)
	if err != nil {
		apiUtils.WriteErrorResponse(w, r, http.StatusInternalServerError, err, c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.AddressResponse{Address: address}, c.logger)
}

// @Summary Get the hash of the most recently submitted transaction
// @Tags Bridge
// @Produce json
// @Success 200 {object} response.TxHashResponse "OK"
// @Security ApiKeyAuth
// @Router /Bridge/GetLatestTxHash [get]
func (c *BridgeControllerImpl) getLatestTxHash(w http.ResponseWriter, r *http.Request) {
	apiUtils.WriteResponse(w, r, http.StatusOK,
		response.TxHashResponse{TxHash: c.orchestrator.LatestTxHash()}, c.logger)
}

// @Summary List all stored contract events
// @Tags Bridge
// @Produce json
// @Success 200 {object} response.EventsResponse "OK"
// @Security ApiKeyAuth
// @Router /Bridge/GetEvents [get]
func (c *BridgeControllerImpl) getEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.db.GetAllEvents()
	if err != nil {
		apiUtils.WriteErrorResponse(w, r, http.StatusInternalServerError, err, c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.EventsResponse{Events: events}, c.logger)
}

// @Summary Get one stored contract event by id
// @Tags Bridge
// @Produce json
// @Success 200 {object} oracleCore.ContractEvent "OK"
// @Failure 404 {object} response.ErrorResponse "Event not found."
// @Security ApiKeyAuth
// @Router /Bridge/GetEvent [get]
func (c *BridgeControllerImpl) getEvent(w http.ResponseWriter, r *http.Request) {
	queryValues := r.URL.Query()

	id := queryValues.Get("id")
	if id == "" {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadRequest, errors.New("id missing from query"), c.logger)

		return
	}

	event, err := c.db.GetEvent(id)
	if err != nil {
		apiUtils.WriteErrorResponse(w, r, http.StatusInternalServerError, err, c.logger)

		return
	}

	if event == nil {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusNotFound, fmt.Errorf("event not found: %s", id), c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, event, c.logger)
}

// @Summary Submit a transfer intent directly
// @Description Runs the full pipeline for a single transfer intent and returns the submission result.
// @Tags Bridge
// @Accept json
// @Produce json
// @Success 200 {object} response.BridgeResponse "OK"
// @Failure 400 {object} response.ErrorResponse "Malformed request body."
// @Security ApiKeyAuth
// @Router /Bridge/Submit [post]
func (c *BridgeControllerImpl) submit(w http.ResponseWriter, r *http.Request) {
	requestBody, ok := apiUtils.DecodeModel[request.BridgeRequest](w, r, c.logger)
	if !ok {
		return
	}

	destChainKey := requestBody.DestinationChainKey
	if destChainKey == "" {
		destChainKey = c.appConfig.Bridge.DestinationChainKey
	}

	results := c.orchestrator.ProcessBatch(r.Context(), []oracleCore.TransferIntent{{
		RecipientAddress:    requestBody.RecipientAddress,
		AmountStroops:       requestBody.AmountStroops,
		DestinationChainKey: destChainKey,
	}})

	apiUtils.WriteResponse(w, r, http.StatusOK, response.NewBridgeResponse(results), c.logger)
}
