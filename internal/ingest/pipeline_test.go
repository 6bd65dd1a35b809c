package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"southbound-app/internal/infra/blob"
)

type memUploader struct {
	uploads map[string][]byte
}

func (m *memUploader) EnsureContainer(context.Context, string) error { return nil }

func (m *memUploader) Upload(_ context.Context, containerName, key string, data []byte, _ string) error {
	if m.uploads == nil {
		m.uploads = map[string][]byte{}
	}
	m.uploads[key] = data
	return nil
}

func (m *memUploader) Delete(context.Context, string, string) error { return nil }

func newTestIngestor(t *testing.T) (*Ingestor, *memUploader) {
	t.Helper()
	uploader := &memUploader{}
	store, err := blob.NewWithUploader(uploader, "southbound-images", "https://"+blobHost)
	require.NoError(t, err)
	return NewIngestor(store), uploader
}

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 99, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestIngestRemoteURL(t *testing.T) {
	payload := []byte("fake image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	ingestor, uploader := newTestIngestor(t)

	res, err := ingestor.Ingest(context.Background(), Source{RemoteURL: srv.URL + "/photo.jpg"},
		Options{Category: "cities", NameHint: "hanoi.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "https://"+blobHost+"/southbound-images/cities/hanoi.jpg", res.URL)
	assert.Equal(t, payload, uploader.uploads["cities/hanoi.jpg"])
	assert.Nil(t, res.Compression)
}

func TestIngestRemoteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ingestor, uploader := newTestIngestor(t)

	_, err := ingestor.Ingest(context.Background(), Source{RemoteURL: srv.URL},
		Options{Category: "cities"})
	assert.ErrorContains(t, err, "status 404")
	assert.Empty(t, uploader.uploads, "a failed fetch must not write anything")
}

func TestIngestBase64WithDataURLPrefix(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	ingestor, uploader := newTestIngestor(t)

	res, err := ingestor.Ingest(context.Background(), Source{Base64Data: payload},
		Options{Category: "highlights", NameHint: "h.png"})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.URL, "/southbound-images/highlights/h.png"))
	assert.Equal(t, raw, uploader.uploads["highlights/h.png"])
}

func TestIngestBase64Bare(t *testing.T) {
	raw := []byte("plain payload")
	ingestor, uploader := newTestIngestor(t)

	_, err := ingestor.Ingest(context.Background(),
		Source{Base64Data: base64.StdEncoding.EncodeToString(raw)},
		Options{Category: "cities", NameHint: "c.jpg"})
	require.NoError(t, err)
	assert.Equal(t, raw, uploader.uploads["cities/c.jpg"])
}

func TestIngestInvalidBase64(t *testing.T) {
	ingestor, _ := newTestIngestor(t)

	_, err := ingestor.Ingest(context.Background(), Source{Base64Data: "%%%not-base64%%%"},
		Options{Category: "cities"})
	assert.ErrorContains(t, err, "base64")
}

func TestIngestEmptySource(t *testing.T) {
	ingestor, _ := newTestIngestor(t)

	_, err := ingestor.Ingest(context.Background(), Source{}, Options{Category: "cities"})
	assert.ErrorContains(t, err, "no source")
}

func TestIngestWithCompression(t *testing.T) {
	src := pngFixture(t, 120, 60)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(src)
	}))
	defer srv.Close()

	ingestor, uploader := newTestIngestor(t)

	res, err := ingestor.Ingest(context.Background(), Source{RemoteURL: srv.URL},
		Options{Category: "cities", NameHint: "compressed.jpg", Compress: true})
	require.NoError(t, err)

	require.NotNil(t, res.Compression)
	assert.Equal(t, "jpeg", res.Compression.Format)
	assert.Equal(t, len(src), res.Compression.OriginalSize)

	stored := uploader.uploads["cities/compressed.jpg"]
	_, format, err := image.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestIngestCompressedKeyMatchesOutputFormat(t *testing.T) {
	src := pngFixture(t, 40, 40)
	ingestor, uploader := newTestIngestor(t)

	res, err := ingestor.Ingest(context.Background(),
		Source{Base64Data: base64.StdEncoding.EncodeToString(src)},
		Options{Category: "cities", NameHint: "photo.png", Compress: true})
	require.NoError(t, err)

	// The PNG was re-encoded as JPEG, so the key follows the output bytes.
	assert.True(t, strings.HasSuffix(res.URL, "/southbound-images/cities/photo.jpg"), res.URL)
	assert.Contains(t, uploader.uploads, "cities/photo.jpg")
	assert.NotContains(t, uploader.uploads, "cities/photo.png")
}

func TestIngestPassthroughKeepsExtension(t *testing.T) {
	raw := []byte("definitely not an image")
	ingestor, uploader := newTestIngestor(t)

	res, err := ingestor.Ingest(context.Background(),
		Source{Base64Data: base64.StdEncoding.EncodeToString(raw)},
		Options{Category: "cities", NameHint: "notes.png", Compress: true})
	require.NoError(t, err)

	require.NotNil(t, res.Compression)
	assert.Equal(t, "unknown", res.Compression.Format)
	assert.Equal(t, raw, uploader.uploads["cities/notes.png"])
}
