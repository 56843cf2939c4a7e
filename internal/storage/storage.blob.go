package storage

// Package storage cung cấp lớp lưu trữ file media (audio, ảnh) trên Firebase Storage.
// Các file được lưu với đường dẫn có tiền tố timestamp để tránh trùng tên.

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/logger"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/utility"
)

// FilePart là nội dung một file từ multipart form
type FilePart struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// BlobStore quản lý việc lưu và xóa file trên Firebase Storage
type BlobStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewBlobStore tạo mới một BlobStore từ Firebase App đã khởi tạo.
// Trả về lỗi nếu Firebase Storage chưa được cấu hình.
func NewBlobStore() (*BlobStore, error) {
	bucket, err := utility.GetStorageBucket()
	if err != nil {
		return nil, err
	}

	bucketName := ""
	if global.ServerConfig != nil {
		bucketName = global.ServerConfig.FirebaseStorageBucket
	}
	if bucketName == "" {
		return nil, common.ErrStorageNotConfigured
	}

	return &BlobStore{
		bucket:     bucket,
		bucketName: bucketName,
	}, nil
}

// sanitizeFilename loại bỏ các ký tự không an toàn trong tên file
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	name = strings.TrimSpace(name)
	if name == "" {
		name = "file"
	}
	return name
}

// ObjectPath tạo đường dẫn object với tiền tố timestamp: <dir>/<unixmilli>-<filename>
func ObjectPath(dir string, filename string) string {
	return fmt.Sprintf("%s/%d-%s", strings.Trim(dir, "/"), time.Now().UnixMilli(), sanitizeFilename(filename))
}

// Save lưu nội dung từ reader lên bucket với đường dẫn có tiền tố timestamp.
// File được đặt quyền đọc public sau khi upload.
//
// Returns:
// - publicURL: URL public của file
// - objectPath: Đường dẫn object trong bucket (dùng để xóa sau này)
// - error: Lỗi nếu có
func (s *BlobStore) Save(ctx context.Context, dir string, filename string, contentType string, r io.Reader) (string, string, error) {
	objectPath := ObjectPath(dir, filename)
	obj := s.bucket.Object(objectPath)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", "", common.NewError(
			common.ErrCodeStorage,
			"Error al subir el archivo",
			common.StatusInternalServerError,
			err,
		)
	}
	if err := w.Close(); err != nil {
		return "", "", common.NewError(
			common.ErrCodeStorage,
			"Error al subir el archivo",
			common.StatusInternalServerError,
			err,
		)
	}

	// Cho phép đọc public để frontend hiển thị trực tiếp
	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", "", common.NewError(
			common.ErrCodeStorage,
			"Error al publicar el archivo",
			common.StatusInternalServerError,
			err,
		)
	}

	return s.PublicURL(objectPath), objectPath, nil
}

// PublicURL trả về URL public của một object trong bucket
func (s *BlobStore) PublicURL(objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, strings.Join(segments, "/"))
}

// ObjectPathFromURL trích xuất đường dẫn object từ URL public.
// Trả về chuỗi rỗng nếu URL không thuộc bucket này.
func (s *BlobStore) ObjectPathFromURL(publicURL string) string {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucketName)
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	escaped := strings.TrimPrefix(publicURL, prefix)
	segments := strings.Split(escaped, "/")
	for i, seg := range segments {
		if unescaped, err := url.PathUnescape(seg); err == nil {
			segments[i] = unescaped
		}
	}
	return strings.Join(segments, "/")
}

// Delete xóa một object khỏi bucket.
// Lỗi xóa chỉ được log, không chặn luồng xử lý của caller (best-effort).
func (s *BlobStore) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		return nil
	}
	if err := s.bucket.Object(objectPath).Delete(ctx); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"object": objectPath,
			"error":  err.Error(),
		}).Warn("Không xóa được file trên storage")
		return common.NewError(
			common.ErrCodeStorage,
			"Error al eliminar el archivo",
			common.StatusInternalServerError,
			err,
		)
	}
	return nil
}
