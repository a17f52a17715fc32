package storage

import (
	"encoding/json"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinioStorage_PublicURL(t *testing.T) {
	cli, err := minio.New("minio.local:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
	})
	require.NoError(t, err)

	ms := &minioStorage{client: cli, bucket: "plant-images"}

	url := ms.PublicURL("plants/0b5cbfc2.jpg")

	assert.Equal(t, "http://minio.local:9000/plant-images/plants/0b5cbfc2.jpg", url)
}

func TestPublicReadPolicy(t *testing.T) {
	policy := publicReadPolicy("plant-images")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(policy), &doc))
	assert.Contains(t, policy, "arn:aws:s3:::plant-images/*")
	assert.Contains(t, policy, "s3:GetObject")
}
