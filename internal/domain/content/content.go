// Package content serves the fixed marketing-site data the front end
// renders: the program catalogue, office contact info and the service-area
// map configuration. Read-only, no admin surface.
package content

// Program is one care program the agency offers.
type Program struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// Programs is the catalogue behind the program pages and the referral
// form's program-of-interest select.
var Programs = []Program{
	{
		Code:    "gapp",
		Name:    "GAPP - Georgia Pediatric Program",
		Summary: "Skilled nursing and support services for medically fragile children, enabling them to thrive in their homes and communities as an alternative to nursing facility placement.",
	},
	{
		Code:    "now-comp",
		Name:    "NOW/COMP Waiver",
		Summary: "Person-centered support for individuals with intellectual and developmental disabilities, promoting meaningful community integration and independent living.",
	},
	{
		Code:    "icwp",
		Name:    "ICWP - Independent Care Waiver",
		Summary: "Empowering adults with physical impairments or traumatic brain injuries to achieve dignified, independent lives within their communities.",
	},
	{
		Code:    "edwp",
		Name:    "EDWP/CCSP/SOURCE",
		Summary: "Elderly and disabled waiver programs providing personal support services so older adults can remain safely at home.",
	},
	{
		Code:    "private-pay",
		Name:    "Private Pay",
		Summary: "Flexible in-home care arrangements outside the Medicaid waiver programs.",
	},
	{
		Code:    "other",
		Name:    "Other / Not Sure",
		Summary: "Not sure which program fits? Submit a referral and our intake team will help you find the right one.",
	},
}

// ContactInfo is the office contact block shown on the contact page.
type ContactInfo struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	OfficeHours string `json:"office_hours"`
}

// Office is the agency's published contact information.
var Office = ContactInfo{
	Phone:       "(678) 644-0337",
	Email:       "info@heartandsoulhc.org",
	Address:     "1372 Peachtree St NE",
	City:        "Atlanta, GA 30309",
	OfficeHours: "Monday - Friday, 10:00 AM - 3:00 PM EST",
}

// MapConfig is what the service-area map needs to render: the display key
// plus the default viewport over the metro-Atlanta service counties.
type MapConfig struct {
	APIKey    string  `json:"api_key"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`
}

// Default viewport over the service area.
const (
	MapCenterLat = 33.85
	MapCenterLng = -84.35
	MapZoom      = 9
)
