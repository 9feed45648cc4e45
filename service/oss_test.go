package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOssObjectKeyFromURL(t *testing.T) {
	s := &OssService{
		BucketName: "seecooker-dev",
		Endpoint:   "oss-cn-hangzhou.aliyuncs.com",
	}

	key, ok := s.objectKey("https://seecooker-dev.oss-cn-hangzhou.aliyuncs.com/post/2026/09/01/abc.jpg")
	assert.True(t, ok)
	assert.Equal(t, "post/2026/09/01/abc.jpg", key)

	// 非本桶的 URL 不解析
	_, ok = s.objectKey("https://other-bucket.oss-cn-hangzhou.aliyuncs.com/x.jpg")
	assert.False(t, ok)
	_, ok = s.objectKey("https://seecooker-dev.oss-cn-hangzhou.aliyuncs.com/")
	assert.False(t, ok)
}
