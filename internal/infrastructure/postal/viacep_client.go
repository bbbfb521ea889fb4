package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

// ViaCEPClient resolves Brazilian postal codes through the public ViaCEP
// API. A code the service does not know yields a zero PostalAddress, not
// an error, so callers can distinguish "unknown code" from "service down".

type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPostalLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient() *ViaCEPClient {
	baseURL := os.Getenv("VIACEP_BASE_URL")
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	return &ViaCEPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *ViaCEPClient) Lookup(ctx context.Context, postalCode string) (entities.PostalAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.PostalAddress{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[freight][postal] lookup request failed postal_code=%s err=%v", postalCode, err)
		return entities.PostalAddress{}, err
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for malformed codes and {"erro": true} for
	// well-formed codes it does not know.
	if resp.StatusCode == http.StatusBadRequest {
		return entities.PostalAddress{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[freight][postal] unexpected status postal_code=%s status=%d body=%s", postalCode, resp.StatusCode, string(body))
		return entities.PostalAddress{}, fmt.Errorf("postal lookup returned status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[freight][postal] decode failed postal_code=%s err=%v", postalCode, err)
		return entities.PostalAddress{}, err
	}
	if payload.Erro {
		return entities.PostalAddress{}, nil
	}

	return entities.PostalAddress{
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		Region:       payload.UF,
	}, nil
}
