// Package storage keeps payment-proof images in an S3-compatible bucket
// (AWS S3 or Cloudflare R2).
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"sales-backend/internal/config"
	"sales-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ProofStore uploads payment proofs and hands back public URLs.
type ProofStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewProofStore(ctx context.Context, cfg *config.Config) (*ProofStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.ObjectStore.AccessKey,
			cfg.ObjectStore.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.ObjectStore.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.ObjectStore.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.ObjectStore.Endpoint)
		}
	})

	return &ProofStore{
		client:        client,
		bucket:        cfg.ObjectStore.Bucket,
		publicBaseURL: strings.TrimRight(cfg.ObjectStore.PublicBaseURL, "/"),
	}, nil
}

// PutProof stores a proof image under proofs/<saleID>/<timestamp><ext> and
// returns its public URL.
func (ps *ProofStore) PutProof(ctx context.Context, saleID, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("proofs/%s/%d%s", saleID, timeutil.Now().UnixMilli(), ext)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload proof: %w", err)
	}

	return ps.publicBaseURL + "/" + key, nil
}
