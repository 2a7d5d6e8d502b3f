package cache

import "noteshare/internal/infrastructure/assetcache"

type StatusInput struct{}

type StatusOutput struct {
	Body assetcache.Status
}

type RefreshInput struct{}

type RefreshOutput struct {
	Body RefreshResponse
}

type RefreshResponse struct {
	Status  assetcache.Status `json:"status"`
	Deleted []string          `json:"deleted" doc:"Old cache versions removed on activation"`
}
