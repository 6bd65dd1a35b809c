package blob

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azureblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/google/uuid"
)

// ContentTypePolicy maps a blob name to the Content-Type it is served with.
type ContentTypePolicy func(name string) string

// DefaultContentType infers a MIME type from the file extension.
func DefaultContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// Uploader is the slice of the blob service the store needs. The Azure SDK
// client satisfies it through azureUploader; tests swap in a fake.
type Uploader interface {
	EnsureContainer(ctx context.Context, name string) error
	Upload(ctx context.Context, containerName, key string, data []byte, contentType string) error
	Delete(ctx context.Context, containerName, key string) error
}

type azureUploader struct {
	client *azblob.Client
}

func (u *azureUploader) EnsureContainer(ctx context.Context, name string) error {
	access := container.PublicAccessTypeBlob
	_, err := u.client.CreateContainer(ctx, name, &azblob.CreateContainerOptions{Access: &access})
	if bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil
	}
	return err
}

func (u *azureUploader) Upload(ctx context.Context, containerName, key string, data []byte, contentType string) error {
	_, err := u.client.UploadBuffer(ctx, containerName, key, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &azureblob.HTTPHeaders{BlobContentType: &contentType},
	})
	return err
}

func (u *azureUploader) Delete(ctx context.Context, containerName, key string) error {
	_, err := u.client.DeleteBlob(ctx, containerName, key, nil)
	return err
}

// Store uploads image buffers under {category}/{name} keys and hands back
// publicly readable URLs. The container is created lazily on first use.
type Store struct {
	uploader    Uploader
	container   string
	baseURL     *url.URL
	contentType ContentTypePolicy

	ensureOnce sync.Once
	ensureErr  error
}

// New builds a Store over Azure Blob Storage. An empty connection string is
// a construction-time error; without it nothing can ever be uploaded.
func New(connectionString, containerName, publicBaseURL string) (*Store, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("blob storage connection string is not set")
	}
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create blob client: %w", err)
	}
	base := publicBaseURL
	if base == "" {
		base = client.URL()
	}
	return NewWithUploader(&azureUploader{client: client}, containerName, base)
}

// NewWithUploader wires a Store over any Uploader. Used directly by tests.
func NewWithUploader(uploader Uploader, containerName, baseURL string) (*Store, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid blob base URL %q", baseURL)
	}
	return &Store{
		uploader:    uploader,
		container:   containerName,
		baseURL:     u,
		contentType: DefaultContentType,
	}, nil
}

// Host is the hostname stored URLs resolve to, used to classify references.
func (s *Store) Host() string {
	return s.baseURL.Hostname()
}

// Put writes data under {category}/{nameHint} and returns its public URL.
// Without a hint the name is generated from a timestamp and a random token.
func (s *Store) Put(ctx context.Context, data []byte, category, nameHint string) (string, error) {
	s.ensureOnce.Do(func() {
		s.ensureErr = s.uploader.EnsureContainer(ctx, s.container)
	})
	if s.ensureErr != nil {
		return "", fmt.Errorf("ensure container %s: %w", s.container, s.ensureErr)
	}

	name := nameHint
	if name == "" {
		name = GenerateName(".jpg")
	}
	key := category + "/" + name

	if err := s.uploader.Upload(ctx, s.container, key, data, s.contentType(name)); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.urlFor(key), nil
}

// Delete removes the blob a stored URL points at. Callers treat failure as
// non-fatal: a successfully uploaded replacement is never rolled back over a
// cleanup error.
func (s *Store) Delete(ctx context.Context, rawURL string) error {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return err
	}
	return s.uploader.Delete(ctx, s.container, key)
}

// GenerateName builds a unique blob name: <unix-ms>-<token><ext>.
func GenerateName(ext string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func (s *Store) urlFor(key string) string {
	u := *s.baseURL
	u.Path = path.Join(u.Path, s.container, key)
	return u.String()
}

func (s *Store) keyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid blob URL %q: %w", rawURL, err)
	}
	prefix := "/" + s.container + "/"
	idx := strings.Index(u.Path, prefix)
	if idx < 0 {
		return "", fmt.Errorf("URL %q is not in container %s", rawURL, s.container)
	}
	key := u.Path[idx+len(prefix):]
	if key == "" {
		return "", fmt.Errorf("URL %q has no blob key", rawURL)
	}
	return key, nil
}
