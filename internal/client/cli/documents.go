package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/auditkeeper/internal/netx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// uploadToPresignedURL is a test seam for the raw PUT to object storage.
var uploadToPresignedURL = netx.UploadToPresignedURL

// Upload reads a local file, pushes the payload to object storage through a
// presigned URL and registers the document metadata under a project. The
// stored record's url field carries the storage key; a download URL is minted
// on demand.
func (a *App) Upload(ctx context.Context) error {
	projectID, err := getSimpleText(a.reader, "Enter project id", os.Stdout)
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return err
	}

	key, url, err := a.api.PresignUpload(ctx)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if err := uploadToPresignedURL(ctx, url, bytes.NewReader(data)); err != nil {
		fmt.Println(err)
		return err
	}

	doc, err := a.api.CreateDocument(ctx, models.Document{
		ProjectID: projectID,
		Name:      filepath.Base(path),
		URL:       key,
	})
	if err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Printf("Uploaded document %s\n", doc.ID)
	return nil
}
