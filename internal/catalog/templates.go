package catalog

import "github.com/jaeyoonkim/gisu/internal/domain"

// SeedTemplate generates a checklist task at a fixed day offset from a
// named anchor of the target cohort.
type SeedTemplate struct {
	Key             string
	Title           string
	OffsetDays      int
	Anchor          domain.Anchor
	DefaultAssignee string
}

// SeedTemplates is the built-in checklist for every cohort. Offsets before
// program start cover intake preparation; the last two hang off the
// graduation date.
var SeedTemplates = []SeedTemplate{
	{Key: "promo_instagram", Title: "인스타그램 홍보 게시", OffsetDays: -42, Anchor: domain.AnchorPythonStart},
	{Key: "entrants_info", Title: "입과자 정보 정리", OffsetDays: -21, Anchor: domain.AnchorPythonStart},
	{Key: "vendor_register", Title: "거래처 등록", OffsetDays: -21, Anchor: domain.AnchorPythonStart},
	{Key: "platform_register", Title: "러닝플랫폼 등록", OffsetDays: -21, Anchor: domain.AnchorPythonStart},
	{Key: "dorm_assign", Title: "국제관 방배정", OffsetDays: -14, Anchor: domain.AnchorPythonStart},
	{Key: "entrance_video", Title: "입과식 영상 제작", OffsetDays: -14, Anchor: domain.AnchorPythonStart},
	{Key: "snack_order", Title: "다과 주문", OffsetDays: -4, Anchor: domain.AnchorPythonStart},

	{Key: "graduation_prep", Title: "수료식 진행 준비", OffsetDays: -14, Anchor: domain.AnchorAIEnd},
	{Key: "certificate_prep", Title: "수료증 준비", OffsetDays: -1, Anchor: domain.AnchorAIEnd},
}
