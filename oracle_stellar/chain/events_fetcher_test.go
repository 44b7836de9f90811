package chain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type httpFetcherMock struct {
	mock.Mock
}

var _ common.HTTPFetcher = (*httpFetcherMock)(nil)

func (m *httpFetcherMock) Fetch(
	ctx context.Context, req common.FetchRequest,
) (common.FetchResponse, error) {
	args := m.Called(ctx, req)

	return args.Get(0).(common.FetchResponse), args.Error(1) //nolint:forcetypeassert
}

func TestFetchEvents(t *testing.T) {
	t.Parallel()

	config := &core.StellarConfig{Networks: map[string]core.NetworkConfig{}}
	config.FillOut()

	t.Run("request shape", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &httpFetcherMock{}
		fetcherMock.On("Fetch", mock.Anything, mock.MatchedBy(func(req common.FetchRequest) bool {
			var parsed getEventsRequest
			if err := json.Unmarshal(req.Body, &parsed); err != nil {
				return false
			}

			return req.URL == core.TestnetRPCURL &&
				req.Method == "POST" &&
				parsed.JSONRPC == "2.0" &&
				parsed.Method == getEventsMethod &&
				parsed.Params.StartLedger == 19888 &&
				parsed.Params.EndLedger == 19888+core.DefaultLedgerWindow &&
				parsed.Params.XDRFormat == "json" &&
				len(parsed.Params.Filters) == 1 &&
				parsed.Params.Filters[0].ContractIDs[0] == core.TestnetContractID &&
				parsed.Params.Pagination.Limit == core.DefaultEventLimit
		})).Return(common.FetchResponse{StatusCode: 200, Body: []byte(`{"result":{"events":[]}}`)}, nil)

		fetcher := NewEventsFetcher(config, fetcherMock, hclog.NewNullLogger())

		body, err := fetcher.FetchEvents(context.Background(), 19888, eth.ChainKeyHolesky)
		require.NoError(t, err)
		require.JSONEq(t, `{"result":{"events":[]}}`, string(body))

		fetcherMock.AssertExpectations(t)
	})

	t.Run("mainnet network for base", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &httpFetcherMock{}
		fetcherMock.On("Fetch", mock.Anything, mock.MatchedBy(func(req common.FetchRequest) bool {
			return req.URL == core.MainnetRPCURL
		})).Return(common.FetchResponse{StatusCode: 200, Body: []byte(`{}`)}, nil)

		fetcher := NewEventsFetcher(config, fetcherMock, hclog.NewNullLogger())

		_, err := fetcher.FetchEvents(context.Background(), 100, eth.ChainKeyBase)
		require.NoError(t, err)

		fetcherMock.AssertExpectations(t)
	})

	t.Run("non-200 status", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &httpFetcherMock{}
		fetcherMock.On("Fetch", mock.Anything, mock.Anything).
			Return(common.FetchResponse{StatusCode: 503, Body: []byte(`busy`)}, nil)

		fetcher := NewEventsFetcher(config, fetcherMock, hclog.NewNullLogger())

		_, err := fetcher.FetchEvents(context.Background(), 100, eth.ChainKeyHolesky)
		require.ErrorContains(t, err, "status 503")
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &httpFetcherMock{}
		fetcherMock.On("Fetch", mock.Anything, mock.Anything).
			Return(common.FetchResponse{}, errors.New("connection refused"))

		fetcher := NewEventsFetcher(config, fetcherMock, hclog.NewNullLogger())

		_, err := fetcher.FetchEvents(context.Background(), 100, eth.ChainKeyHolesky)
		require.ErrorContains(t, err, "connection refused")
	})
}

func TestNormalizeEventsResponse(t *testing.T) {
	t.Parallel()

	t.Run("strips volatile fields", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"id": 8675309,
			"jsonrpc": "2.0",
			"result": {
				"events": [{"id": "0004-01"}],
				"latestLedger": 19999,
				"cursor": "0004-02",
				"_links": {"self": "https://example"},
				"_meta": {"latency": 12}
			}
		}`)

		normalized := NormalizeEventsResponse(body)

		require.JSONEq(t,
			`{"jsonrpc":"2.0","result":{"events":[{"id":"0004-01"}]}}`,
			string(normalized))
	})

	t.Run("identical across executions", func(t *testing.T) {
		t.Parallel()

		first := []byte(`{"id": 1, "result": {"events": [], "latestLedger": 100}}`)
		second := []byte(`{"id": 2, "result": {"events": [], "latestLedger": 105}}`)

		require.Equal(t, NormalizeEventsResponse(first), NormalizeEventsResponse(second))
	})

	t.Run("non-json body passes through", func(t *testing.T) {
		t.Parallel()

		body := []byte(`not json`)

		require.Equal(t, body, NormalizeEventsResponse(body))
	})
}
