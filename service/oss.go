package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"seecooker/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 校验并上传图片，返回可访问 URL
	UploadImage(ctx context.Context, category string, header *multipart.FileHeader) (string, error)

	// UploadReader 上传流
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// DeleteByURL 按上传时返回的 URL 删除对象
	DeleteByURL(ctx context.Context, rawURL string) error
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	Endpoint   string
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	client := oss.NewClient(ossCfg)

	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		Endpoint:   cfg.Endpoint,
	}
}

// UploadImage 校验图片类型后上传，objectKey 形如 avatar/2026/09/01/<id>.jpg
func (s *OssService) UploadImage(ctx context.Context, category string, header *multipart.FileHeader) (string, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return "", fmt.Errorf("missing image")
	}
	if header.Size <= 0 || header.Size > maxSize {
		return "", fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取格式（不解码全图）
	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("%s/%s/%s%s",
		category,
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if err := s.UploadReader(ctx, limited, objectKey); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, s.Endpoint, objectKey), nil
}

// UploadReader 上传 Reader（HTTP 上传场景）
func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

// Delete 删除对象
func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// DeleteByURL 按 UploadImage 返回的 URL 删除对象，非本桶的 URL 拒绝
func (s *OssService) DeleteByURL(ctx context.Context, rawURL string) error {
	key, ok := s.objectKey(rawURL)
	if !ok {
		return fmt.Errorf("not an object url: %s", rawURL)
	}
	return s.Delete(ctx, key)
}

func (s *OssService) objectKey(rawURL string) (string, bool) {
	prefix := fmt.Sprintf("https://%s.%s/", s.BucketName, s.Endpoint)
	key := strings.TrimPrefix(rawURL, prefix)
	if key == rawURL || key == "" {
		return "", false
	}
	return key, true
}
