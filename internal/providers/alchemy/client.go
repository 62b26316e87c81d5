package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/henrymaxel/platform-mvp-sub000/internal/adapter"
	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/config"
	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
	"github.com/henrymaxel/platform-mvp-sub000/internal/logger"
	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
	"github.com/henrymaxel/platform-mvp-sub000/internal/ratelimit"
	"github.com/henrymaxel/platform-mvp-sub000/internal/registry"
)

const PROVIDER_NAME = "alchemy"

const (
	// maxContractsPerRequest is the indexer's limit on contractAddresses[] per getNFTs call
	maxContractsPerRequest = 45

	// maxPages bounds pagination of a single getNFTs or getOwnersForToken listing
	maxPages = 200

	defaultPageSize = 100
	defaultBaseURL  = "https://%s.g.alchemy.com/nft/v2/%s"
	spamFilter      = "SPAM"
)

const (
	methodGetNFTs  = "getNFTs"
	methodContract = "getContractMetadata"
	methodOwners   = "getOwnersForToken"
)

const (
	statusOK        = "ok"
	statusTransient = "transient"
	statusPermanent = "permanent"
)

// ErrNoAPIKey is returned when the client is used without an API key
var ErrNoAPIKey = errors.New("no API key provided")

// Client implements chain.Gateway against the Alchemy NFT API v2
type Client struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	spam       registry.SpamRegistry
	baseURL    string
	apiKey     string
	pageSize   int
}

// NewClient creates a new Alchemy gateway. spam may be nil.
func NewClient(cfg config.AlchemyConfig, httpClient adapter.HTTPClient, limiter ratelimit.Limiter, spam registry.SpamRegistry) chain.Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		spam:       spam,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		pageSize:   pageSize,
	}
}

func (c *Client) endpoint(chainID domain.ChainID, method string, params url.Values) (string, error) {
	if c.apiKey == "" {
		return "", chain.Permanent(ErrNoAPIKey)
	}
	network, ok := chainID.Network()
	if !ok {
		return "", chain.Permanent(fmt.Errorf("%w: %d", domain.ErrUnsupportedChain, int64(chainID)))
	}
	return fmt.Sprintf(c.baseURL, network, c.apiKey) + "/" + method + "?" + params.Encode(), nil
}

// call performs a rate limited GET and classifies the failure
func (c *Client) call(ctx context.Context, method string, endpoint string, result interface{}) error {
	_, err := ratelimit.Request(ctx, c.limiter, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.httpClient.Get(ctx, endpoint, result)
	})
	if err != nil {
		classified := classify(err)
		status := statusPermanent
		if chain.IsTransient(classified) {
			status = statusTransient
		}
		metrics.GatewayCallsTotal.WithLabelValues(PROVIDER_NAME, method, status).Inc()
		return fmt.Errorf("%s failed: %w", method, classified)
	}
	metrics.GatewayCallsTotal.WithLabelValues(PROVIDER_NAME, method, statusOK).Inc()
	return nil
}

// classify maps a transport failure to a transient or permanent gateway error
func classify(err error) error {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Retryable() {
			return chain.Transient(err)
		}
		return chain.Permanent(err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return chain.Permanent(err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return chain.Transient(err)
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return chain.Transient(err)
	}

	// Unknown failures are retried by the next sweep rather than written off
	return chain.Transient(err)
}

// GetOwnedTokens lists the tokens held by address, restricted to contractFilter when not empty
func (c *Client) GetOwnedTokens(ctx context.Context, address string, chainID domain.ChainID, contractFilter []string) ([]chain.OwnedToken, error) {
	owner, err := domain.NormalizeAddress(address)
	if err != nil {
		return nil, chain.Permanent(err)
	}

	filter := domain.NormalizeAddresses(contractFilter)
	if len(contractFilter) > 0 && len(filter) == 0 {
		// Every configured contract was invalid, do not fall back to an unfiltered listing
		return nil, chain.Permanent(fmt.Errorf("%w: no valid contract in filter", domain.ErrInvalidAddress))
	}

	var chunks [][]string
	if len(filter) == 0 {
		chunks = [][]string{nil}
	} else {
		for start := 0; start < len(filter); start += maxContractsPerRequest {
			end := min(start+maxContractsPerRequest, len(filter))
			chunks = append(chunks, filter[start:end])
		}
	}

	var tokens []chain.OwnedToken
	for _, contracts := range chunks {
		page, err := c.listOwnedTokens(ctx, owner, chainID, contracts)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, page...)
	}

	return tokens, nil
}

func (c *Client) listOwnedTokens(ctx context.Context, owner string, chainID domain.ChainID, contracts []string) ([]chain.OwnedToken, error) {
	var tokens []chain.OwnedToken
	pageKey := ""
	for page := 0; page < maxPages; page++ {
		params := url.Values{}
		params.Set("owner", owner)
		params.Set("withMetadata", "true")
		params.Set("pageSize", fmt.Sprintf("%d", c.pageSize))
		params.Add("excludeFilters[]", spamFilter)
		for _, contract := range contracts {
			params.Add("contractAddresses[]", contract)
		}
		if pageKey != "" {
			params.Set("pageKey", pageKey)
		}

		endpoint, err := c.endpoint(chainID, methodGetNFTs, params)
		if err != nil {
			return nil, err
		}

		var resp getNFTsResponse
		if err := c.call(ctx, methodGetNFTs, endpoint, &resp); err != nil {
			return nil, err
		}

		for _, nft := range resp.OwnedNFTs {
			token, ok := c.toOwnedToken(ctx, chainID, nft)
			if ok {
				tokens = append(tokens, token)
			}
		}

		if resp.PageKey == "" {
			return tokens, nil
		}
		pageKey = resp.PageKey
	}

	logger.WarnCtx(ctx, "Owned token listing truncated",
		zap.String("owner", owner),
		zap.Int64("chain_id", int64(chainID)),
		zap.Int("pages", maxPages))
	return tokens, nil
}

// toOwnedToken validates an indexer record, dropping malformed and spam entries
func (c *Client) toOwnedToken(ctx context.Context, chainID domain.ChainID, nft ownedNFT) (chain.OwnedToken, bool) {
	contract, err := domain.NormalizeAddress(nft.Contract.Address)
	if err != nil || nft.ID.TokenID == "" {
		logger.DebugCtx(ctx, "Skipping malformed indexer record",
			zap.String("contract", nft.Contract.Address),
			zap.String("token_id", nft.ID.TokenID))
		return chain.OwnedToken{}, false
	}

	if bool(nft.SpamInfo.IsSpam) || (c.spam != nil && c.spam.IsSpam(chainID, contract)) {
		return chain.OwnedToken{}, false
	}

	tokenType := nft.ID.TokenMetadata.TokenType
	if tokenType == "" {
		tokenType = nft.ContractMetadata.TokenType
	}

	return chain.OwnedToken{
		ContractAddress: contract,
		TokenIDHex:      nft.ID.TokenID,
		TokenType:       tokenType,
		Metadata:        nft.tokenMetadata(),
	}, true
}

// GetContractMetadata fetches contract metadata
func (c *Client) GetContractMetadata(ctx context.Context, contractAddress string, chainID domain.ChainID) (*chain.ContractMetadata, error) {
	contract, err := domain.NormalizeAddress(contractAddress)
	if err != nil {
		return nil, chain.Permanent(err)
	}

	params := url.Values{}
	params.Set("contractAddress", contract)
	endpoint, err := c.endpoint(chainID, methodContract, params)
	if err != nil {
		return nil, err
	}

	var resp contractMetadataResponse
	if err := c.call(ctx, methodContract, endpoint, &resp); err != nil {
		return nil, err
	}

	return &chain.ContractMetadata{
		Name:        strings.TrimSpace(resp.ContractMetadata.Name),
		Symbol:      strings.TrimSpace(resp.ContractMetadata.Symbol),
		TokenType:   resp.ContractMetadata.TokenType,
		TotalSupply: resp.ContractMetadata.TotalSupply,
	}, nil
}

// GetCurrentOwners lists the lowercase addresses currently holding the token.
// A listing that does not fit in maxPages is a transient error since a partial owner set cannot prove a loss.
func (c *Client) GetCurrentOwners(ctx context.Context, contractAddress string, tokenID string, chainID domain.ChainID) ([]string, error) {
	contract, err := domain.NormalizeAddress(contractAddress)
	if err != nil {
		return nil, chain.Permanent(err)
	}

	var owners []string
	pageKey := ""
	for page := 0; page < maxPages; page++ {
		params := url.Values{}
		params.Set("contractAddress", contract)
		params.Set("tokenId", tokenID)
		if pageKey != "" {
			params.Set("pageKey", pageKey)
		}
		endpoint, err := c.endpoint(chainID, methodOwners, params)
		if err != nil {
			return nil, err
		}

		var resp ownersResponse
		if err := c.call(ctx, methodOwners, endpoint, &resp); err != nil {
			return nil, err
		}

		for _, owner := range resp.Owners {
			owners = append(owners, strings.ToLower(strings.TrimSpace(owner)))
		}

		if resp.PageKey == "" {
			return owners, nil
		}
		pageKey = resp.PageKey
	}

	return nil, chain.Transient(fmt.Errorf("owners of %s/%s exceed %d pages", contract, tokenID, maxPages))
}
