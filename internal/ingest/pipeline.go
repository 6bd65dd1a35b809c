package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-resty/resty/v2"

	"southbound-app/internal/domain/media"
	"southbound-app/internal/infra/blob"
)

// Source is either a remote URL to fetch or an inline base64 payload.
type Source struct {
	RemoteURL  string
	Base64Data string
}

type Options struct {
	Category string
	NameHint string
	Compress bool
	Quality  int // 0 = transcoder default
}

type IngestResult struct {
	URL         string
	Compression *media.Result // nil when compression was not requested
}

// ImageIngestor is what the migration job depends on; the migrator tests
// substitute a fake.
type ImageIngestor interface {
	Ingest(ctx context.Context, src Source, opts Options) (*IngestResult, error)
}

// Ingestor turns an image source into a stored blob URL:
// fetch/decode -> optional transcode -> upload. The only side effect is the
// single blob write.
type Ingestor struct {
	Blob *blob.Store
	HTTP *resty.Client
}

func NewIngestor(store *blob.Store) *Ingestor {
	// No client timeout: ingestion is used by an administrator-triggered
	// maintenance job that is expected to run to completion.
	return &Ingestor{Blob: store, HTTP: resty.New()}
}

func (ing *Ingestor) Ingest(ctx context.Context, src Source, opts Options) (*IngestResult, error) {
	data, err := ing.resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{}
	name := opts.NameHint
	if opts.Compress {
		compressed := media.Transcode(data, media.Options{Quality: opts.Quality})
		data = compressed.Data
		result.Compression = &compressed

		// Keep the blob key's extension in sync with the bytes actually
		// stored: a same-format fallback must not land under a .jpg key.
		if ext := extForFormat(compressed.Format); ext != "" {
			if name == "" {
				name = blob.GenerateName(ext)
			} else {
				name = strings.TrimSuffix(name, path.Ext(name)) + ext
			}
		}
	}

	url, err := ing.Blob.Put(ctx, data, opts.Category, name)
	if err != nil {
		return nil, err
	}
	result.URL = url
	return result, nil
}

// extForFormat maps a transcoder output format to a blob extension; "" means
// the format is unknown and the caller's name stands.
func extForFormat(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	case "webp":
		return ".webp"
	default:
		return ""
	}
}

func (ing *Ingestor) resolve(ctx context.Context, src Source) ([]byte, error) {
	switch {
	case src.RemoteURL != "":
		resp, err := ing.HTTP.R().SetContext(ctx).Get(src.RemoteURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src.RemoteURL, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch %s: status %d", src.RemoteURL, resp.StatusCode())
		}
		return resp.Body(), nil

	case src.Base64Data != "":
		payload := src.Base64Data
		// Strip a data-URL prefix like "data:image/png;base64,".
		if i := strings.Index(payload, ";base64,"); i >= 0 {
			payload = payload[i+len(";base64,"):]
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		if len(data) == 0 {
			return nil, errors.New("empty base64 payload")
		}
		return data, nil

	default:
		return nil, errors.New("ingest: no source provided")
	}
}
