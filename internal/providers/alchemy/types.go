package alchemy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/henrymaxel/platform-mvp-sub000/internal/chain"
)

// flexBool decodes booleans the indexer sometimes sends as strings ("true")
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid boolean %q: %w", raw, err)
	}
	*b = flexBool(v)
	return nil
}

type getNFTsResponse struct {
	OwnedNFTs  []ownedNFT `json:"ownedNfts"`
	PageKey    string     `json:"pageKey"`
	TotalCount int        `json:"totalCount"`
}

type ownedNFT struct {
	Contract struct {
		Address string `json:"address"`
	} `json:"contract"`
	ID struct {
		TokenID       string `json:"tokenId"`
		TokenMetadata struct {
			TokenType string `json:"tokenType"`
		} `json:"tokenMetadata"`
	} `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TokenURI    struct {
		Gateway string `json:"gateway"`
		Raw     string `json:"raw"`
	} `json:"tokenUri"`
	Media []struct {
		Gateway string `json:"gateway"`
		Raw     string `json:"raw"`
	} `json:"media"`
	// Metadata is the token's off-chain JSON; shape is not guaranteed
	Metadata         json.RawMessage `json:"metadata"`
	ContractMetadata struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		TokenType   string `json:"tokenType"`
		TotalSupply string `json:"totalSupply"`
	} `json:"contractMetadata"`
	SpamInfo struct {
		IsSpam flexBool `json:"isSpam"`
	} `json:"spamInfo"`
}

type rawAttribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type"`
}

type rawTokenMetadata struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	ImageURL     string         `json:"image_url"`
	AnimationURL string         `json:"animation_url"`
	ExternalURL  string         `json:"external_url"`
	Attributes   []rawAttribute `json:"attributes"`
}

// tokenMetadata builds the typed metadata, tolerating malformed off-chain JSON
func (n ownedNFT) tokenMetadata() chain.TokenMetadata {
	var raw rawTokenMetadata
	if len(n.Metadata) > 0 && bytes.HasPrefix(bytes.TrimSpace(n.Metadata), []byte("{")) {
		if err := json.Unmarshal(n.Metadata, &raw); err != nil {
			// Attributes are the usual culprit, keep the scalar fields
			var scalars struct {
				Name         string `json:"name"`
				Description  string `json:"description"`
				Image        string `json:"image"`
				AnimationURL string `json:"animation_url"`
				ExternalURL  string `json:"external_url"`
			}
			_ = json.Unmarshal(n.Metadata, &scalars)
			raw = rawTokenMetadata{
				Name:         scalars.Name,
				Description:  scalars.Description,
				Image:        scalars.Image,
				AnimationURL: scalars.AnimationURL,
				ExternalURL:  scalars.ExternalURL,
			}
		}
	}

	md := chain.TokenMetadata{
		Name:         firstNonEmpty(raw.Name, n.Title),
		Description:  firstNonEmpty(raw.Description, n.Description),
		Image:        firstNonEmpty(raw.Image, raw.ImageURL),
		AnimationURL: raw.AnimationURL,
		ExternalURL:  raw.ExternalURL,
		TokenURI:     firstNonEmpty(n.TokenURI.Raw, n.TokenURI.Gateway),
	}
	if md.Image == "" && len(n.Media) > 0 {
		md.Image = firstNonEmpty(n.Media[0].Gateway, n.Media[0].Raw)
	}

	for _, attr := range raw.Attributes {
		if attr.TraitType == "" && attr.Value == nil {
			continue
		}
		value := ""
		if attr.Value != nil {
			value = fmt.Sprint(attr.Value)
		}
		md.Attributes = append(md.Attributes, chain.Attribute{
			TraitType:   attr.TraitType,
			Value:       value,
			DisplayType: attr.DisplayType,
		})
	}

	return md
}

type contractMetadataResponse struct {
	Address          string `json:"address"`
	ContractMetadata struct {
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		TokenType   string `json:"tokenType"`
		TotalSupply string `json:"totalSupply"`
	} `json:"contractMetadata"`
}

type ownersResponse struct {
	Owners  []string `json:"owners"`
	PageKey string   `json:"pageKey"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
