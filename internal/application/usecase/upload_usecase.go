package usecase

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/ports"
	"github.com/relampago/backoffice-api/internal/domain"
	_ "golang.org/x/image/webp"
)

var imageFormats = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadUseCase recebe imagens (amostras, protocolos, fotos de material).
type UploadUseCase struct {
	storage  ports.FileStorage
	maxBytes int64
}

func NewUploadUseCase(storage ports.FileStorage, maxBytes int64) *UploadUseCase {
	return &UploadUseCase{storage: storage, maxBytes: maxBytes}
}

// Upload o tipo é decidido pelo conteúdo, não pela extensão do nome.
func (uc *UploadUseCase) Upload(ctx context.Context, data []byte) (*dto.UploadResponse, error) {
	if uc.maxBytes > 0 && int64(len(data)) > uc.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, invalid("arquivo vazio")
	}
	mime := strings.SplitN(http.DetectContentType(data), ";", 2)[0]
	format, ok := imageFormats[mime]
	if !ok {
		return nil, domain.ErrUnsupportedMedia
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrUnsupportedMedia
	}
	publicID := uuid.New().String()
	url, err := uc.storage.Save(ctx, publicID+"."+format, data)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		URL:      url,
		PublicID: publicID,
		Format:   format,
		Bytes:    int64(len(data)),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
