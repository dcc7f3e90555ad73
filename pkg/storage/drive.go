package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/pluqqy/drivepad/pkg/models"
)

const rootFolder = "root"

// DriveOptions tunes how DriveFacade creates and lists files
type DriveOptions struct {
	NewFileName string
	MimeType    string
	PageSize    int64
	Picker      PickerIntent
}

// DriveFacade implements Facade on top of the Drive v3 REST API
type DriveFacade struct {
	service *drive.Service
	opts    DriveOptions
}

// NewDriveFacade wraps an authenticated Drive service
func NewDriveFacade(service *drive.Service, opts DriveOptions) *DriveFacade {
	if opts.NewFileName == "" {
		opts.NewFileName = "Untitled file"
	}
	if opts.MimeType == "" {
		opts.MimeType = "text/plain"
	}
	return &DriveFacade{service: service, opts: opts}
}

// NewDriveBuilder returns a Builder that binds the account's token to a
// Drive client. Extra client options are appended last, so tests can point
// the client at a fake server.
func NewDriveBuilder(settings *models.Settings, extra ...option.ClientOption) Builder {
	return func(ctx context.Context, account *models.Account) (Facade, error) {
		if account == nil || account.Token == nil {
			return nil, fmt.Errorf("build drive client: %w: no authenticated account", ErrFailure)
		}

		opts := []option.ClientOption{
			option.WithTokenSource(account.TokenSource()),
		}
		if settings.Drive.Endpoint != "" {
			opts = append(opts, option.WithEndpoint(settings.Drive.Endpoint))
		}
		opts = append(opts, extra...)

		service, err := drive.NewService(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("build drive client: %w: %w", ErrFailure, err)
		}

		return NewDriveFacade(service, DriveOptions{
			NewFileName: settings.Drive.NewFileName,
			MimeType:    settings.Drive.MimeType,
			PageSize:    settings.Drive.QueryPageSize,
			Picker:      NewPickerIntent(settings),
		}), nil
	}
}

func (f *DriveFacade) PickerIntent() PickerIntent {
	return f.opts.Picker
}

func (f *DriveFacade) OpenViaPicker(ctx context.Context, locator string) (*models.Document, error) {
	return ReadLocator(ctx, locator)
}

func (f *DriveFacade) CreateFile(ctx context.Context) (string, error) {
	metadata := &drive.File{
		Name:     f.opts.NewFileName,
		MimeType: f.opts.MimeType,
		Parents:  []string{rootFolder},
	}

	file, err := f.service.Files.Create(metadata).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", apiFailure("create file", err)
	}
	if file == nil || file.Id == "" {
		return "", fmt.Errorf("create file: %w: null result", ErrFailure)
	}

	return file.Id, nil
}

func (f *DriveFacade) ReadFile(ctx context.Context, id string) (*models.Document, error) {
	metadata, err := f.service.Files.Get(id).Fields("id", "name").Context(ctx).Do()
	if err != nil {
		return nil, apiFailure("read file "+id, err)
	}

	resp, err := f.service.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, apiFailure("download file "+id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w: %w", id, ErrFailure, err)
	}

	return &models.Document{
		Name:    metadata.Name,
		Content: string(body),
	}, nil
}

func (f *DriveFacade) SaveFile(ctx context.Context, id, name, content string) error {
	metadata := &drive.File{Name: name}

	_, err := f.service.Files.Update(id, metadata).
		Media(strings.NewReader(content), googleapi.ContentType(f.opts.MimeType)).
		Context(ctx).
		Do()
	if err != nil {
		return apiFailure("save file "+id, err)
	}

	return nil
}

// QueryFiles returns the first page only.
func (f *DriveFacade) QueryFiles(ctx context.Context) ([]models.RemoteFile, error) {
	call := f.service.Files.List().Spaces("drive").Fields("files(id, name)")
	if f.opts.PageSize > 0 {
		call = call.PageSize(f.opts.PageSize)
	}

	list, err := call.Context(ctx).Do()
	if err != nil {
		return nil, apiFailure("query files", err)
	}

	files := make([]models.RemoteFile, 0, len(list.Files))
	for _, file := range list.Files {
		files = append(files, models.RemoteFile{ID: file.Id, Name: file.Name})
	}

	return files, nil
}

func apiFailure(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrFailure, err)
}
