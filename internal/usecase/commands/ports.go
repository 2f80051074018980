package commands

import "refreshing-booking/internal/pkg/config"

// SiteInfo is the fixed business identity used in outgoing mail.
type SiteInfo struct {
	BusinessInbox string
	BrandName     string
}

func NewSiteInfo(cfg config.Config) SiteInfo {
	return SiteInfo{
		BusinessInbox: cfg.Site.BusinessInbox,
		BrandName:     cfg.Site.BrandName,
	}
}
