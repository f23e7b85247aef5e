// Package media covers the scratch-file pipeline: downloading Telegram
// files, stripping video streams with ffmpeg and purging temp artifacts.
package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// TransferError reports a failed fetch of remote media onto local disk.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string { return "transfer: " + e.Err.Error() }
func (e *TransferError) Unwrap() error { return e.Err }

// Transfer downloads Telegram files into the scratch directory.
type Transfer struct {
	api    *tgbotapi.BotAPI
	client *http.Client
	dir    string
}

func NewTransfer(api *tgbotapi.BotAPI, dir string) *Transfer {
	return &Transfer{
		api: api,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		dir: dir,
	}
}

// Fetch downloads the file behind fileID and returns the local path.
// The caller owns cleanup of the resulting file.
func (t *Transfer) Fetch(ctx context.Context, fileID, ext string) (string, error) {
	file, err := t.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", &TransferError{Err: fmt.Errorf("get file %s: %w", fileID, err)}
	}
	url := file.Link(t.api.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransferError{Err: err}
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return "", &TransferError{Err: fmt.Errorf("download %s: %w", fileID, err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &TransferError{Err: fmt.Errorf("download %s: bad status %s", fileID, resp.Status)}
	}

	localPath := filepath.Join(t.dir, "input_"+uuid.NewString()+ext)
	out, err := os.Create(localPath)
	if err != nil {
		return "", &TransferError{Err: err}
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", &TransferError{Err: fmt.Errorf("write %s: %w", localPath, err)}
	}
	return localPath, nil
}
