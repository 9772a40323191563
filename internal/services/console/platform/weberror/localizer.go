package weberror

import (
	"net/http"

	consolei18n "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/i18n"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// Localizer resolves the request printer without persisting the choice.
func Localizer(r *http.Request) (templates.Localizer, string) {
	tag, _ := consolei18n.ResolveTag(r)
	return consolei18n.Printer(tag), tag.String()
}
