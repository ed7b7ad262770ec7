package service

import (
	"github.com/MKhiriev/go-crew-pass/models"
)

type appInfoService struct {
	info models.AppBuildInfo
}

// NewAppInfoService wraps build metadata injected at link time.
func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.info
}
