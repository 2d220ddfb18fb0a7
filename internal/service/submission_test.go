package service_test

import (
	"testing"

	apperrors "assessment-portal-backend/internal/errors"
	"assessment-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestParseSubscribedSpeed(t *testing.T) {
	t.Run("splits download and upload", func(t *testing.T) {
		download, upload, err := service.ParseSubscribedSpeed("100/20")
		assert.NoError(t, err)
		assert.Equal(t, "100", download)
		assert.Equal(t, "20", upload)
	})

	t.Run("trims whitespace around halves", func(t *testing.T) {
		download, upload, err := service.ParseSubscribedSpeed(" 500 / 100 ")
		assert.NoError(t, err)
		assert.Equal(t, "500", download)
		assert.Equal(t, "100", upload)
	})

	t.Run("keeps unit suffixes as submitted", func(t *testing.T) {
		download, upload, err := service.ParseSubscribedSpeed("1Gbps/500Mbps")
		assert.NoError(t, err)
		assert.Equal(t, "1Gbps", download)
		assert.Equal(t, "500Mbps", upload)
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		_, _, err := service.ParseSubscribedSpeed("100mbps")
		assert.Error(t, err)
		assert.True(t, apperrors.IsMalformedInput(err))
	})

	t.Run("rejects empty upload half", func(t *testing.T) {
		_, _, err := service.ParseSubscribedSpeed("100/")
		assert.Error(t, err)
		assert.True(t, apperrors.IsMalformedInput(err))
	})

	t.Run("rejects empty download half", func(t *testing.T) {
		_, _, err := service.ParseSubscribedSpeed("/20")
		assert.Error(t, err)
		assert.True(t, apperrors.IsMalformedInput(err))
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, _, err := service.ParseSubscribedSpeed("")
		assert.Error(t, err)
		assert.True(t, apperrors.IsMalformedInput(err))
	})
}
