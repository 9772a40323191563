package dashboard

import (
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// card is one landing page entry before localization.
type card struct {
	titleKey       string
	descriptionKey string
	href           string
}

// cardsFor lists the sections reachable from area's landing page.
func cardsFor(area string) []card {
	switch area {
	case templates.AreaStaff:
		return []card{
			{"nav.users", "dashboard.staff.users", routepath.StaffUsers},
			{"nav.vehicles", "dashboard.staff.vehicles", routepath.StaffVehicles},
			{"nav.items", "dashboard.staff.items", routepath.StaffItems},
			{"nav.packages", "dashboard.staff.packages", routepath.StaffPackages},
			{"nav.post_packages", "dashboard.staff.post_packages", routepath.StaffPostPackages},
			{"nav.contract_templates", "dashboard.staff.contract_templates", routepath.StaffContractTemplates},
		}
	case templates.AreaAdmin:
		return []card{
			{"nav.transactions", "dashboard.admin.transactions", routepath.AdminTransactions},
			{"nav.platform_wallet", "dashboard.admin.platform_wallet", routepath.AdminPlatformWallet},
		}
	default:
		return nil
	}
}

func dashboardView(area string, loc templates.Localizer) templates.DashboardView {
	cards := cardsFor(area)
	view := templates.DashboardView{
		Heading:  templates.T(loc, "dashboard."+area+".heading"),
		Subtitle: templates.T(loc, "dashboard."+area+".subtitle"),
		Cards:    make([]templates.DashboardCard, 0, len(cards)),
	}
	for _, c := range cards {
		view.Cards = append(view.Cards, templates.DashboardCard{
			Title:       templates.T(loc, c.titleKey),
			Description: templates.T(loc, c.descriptionKey),
			Href:        c.href,
		})
	}
	return view
}
