// Package artcatalog реализует клиент внешнего каталога произведений искусства
// (Art Institute of Chicago API).
//
// Клиент отвечает на один вопрос: существует ли запись с данным идентификатором,
// и если да — возвращает её название и ссылку на изображение. Сетевые сбои
// повторяются один раз; окончательный ответ "не найдено" не повторяется.
package artcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
)

// Client — stateless HTTP-клиент каталога.
type Client struct {
	catalogURL string
	iiifURL    string
	httpClient *http.Client
}

// NewClient создаёт новый клиент каталога.
// catalogURL — базовый адрес коллекции artworks, iiifURL — базовый адрес
// сервера изображений IIIF.
func NewClient(catalogURL, iiifURL string, timeout time.Duration) *Client {
	return &Client{
		catalogURL: catalogURL,
		iiifURL:    iiifURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup проверяет существование записи каталога по externalID.
//
// Возвращает Artwork с кэшируемыми метаданными при успехе,
// errs.ErrInvalidExternalID — если каталог ответил 404,
// errs.ErrCatalogUnavailable — если каталог недоступен после одной повторной
// попытки. Отсутствие подтверждения никогда не трактуется как "не найдено".
func (c *Client) Lookup(ctx context.Context, externalID string) (*Artwork, error) {
	const op = "artcatalog.Lookup"

	artwork, err := c.lookupOnce(ctx, externalID)
	if errors.Is(err, errs.ErrCatalogUnavailable) {
		// Одна повторная попытка на сетевой сбой.
		artwork, err = c.lookupOnce(ctx, externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return artwork, nil
}

func (c *Client) lookupOnce(ctx context.Context, externalID string) (*Artwork, error) {
	reqURL := fmt.Sprintf("%s/%s?fields=id,title,image_id",
		c.catalogURL, url.PathEscape(externalID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.ErrCatalogUnavailable
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errs.ErrInvalidExternalID
	default:
		// 404 — единственный окончательный отказ; любой другой статус
		// означает, что каталог не дал ответа на вопрос.
		return nil, errs.ErrCatalogUnavailable
	}

	var body artworkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.ErrCatalogUnavailable
	}

	artwork := &Artwork{
		ExternalID: externalID,
		Title:      body.Data.Title,
	}
	if body.Data.ImageID != "" {
		artwork.ImageURL = fmt.Sprintf("%s/%s/full/843,/0/default.jpg", c.iiifURL, body.Data.ImageID)
	}
	return artwork, nil
}
