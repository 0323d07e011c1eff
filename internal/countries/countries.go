// Package countries holds the static country directory shown by the portal.
package countries

// Country describes one selectable country.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	DialCode string `json:"dial_code"`
	Flag     string `json:"flag"`
}

// All returns the directory in display order.
func All() []Country {
	return directory
}

// ByCode looks a country up by its two-letter code.
func ByCode(code string) (Country, bool) {
	for _, c := range directory {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

var directory = []Country{
	{Code: "SA", Name: "المملكة العربية السعودية", DialCode: "+966", Flag: "🇸🇦"},
	{Code: "EG", Name: "مصر", DialCode: "+20", Flag: "🇪🇬"},
	{Code: "AE", Name: "الإمارات العربية المتحدة", DialCode: "+971", Flag: "🇦🇪"},
	{Code: "KW", Name: "الكويت", DialCode: "+965", Flag: "🇰🇼"},
	{Code: "QA", Name: "قطر", DialCode: "+974", Flag: "🇶🇦"},
	{Code: "BH", Name: "البحرين", DialCode: "+973", Flag: "🇧🇭"},
	{Code: "OM", Name: "سلطنة عمان", DialCode: "+968", Flag: "🇴🇲"},
	{Code: "YE", Name: "اليمن", DialCode: "+967", Flag: "🇾🇪"},
	{Code: "JO", Name: "الأردن", DialCode: "+962", Flag: "🇯🇴"},
	{Code: "IQ", Name: "العراق", DialCode: "+964", Flag: "🇮🇶"},
	{Code: "LB", Name: "لبنان", DialCode: "+961", Flag: "🇱🇧"},
	{Code: "PS", Name: "فلسطين", DialCode: "+970", Flag: "🇵🇸"},
	{Code: "SY", Name: "سوريا", DialCode: "+963", Flag: "🇸🇾"},
	{Code: "SD", Name: "السودان", DialCode: "+249", Flag: "🇸🇩"},
	{Code: "LY", Name: "ليبيا", DialCode: "+218", Flag: "🇱🇾"},
	{Code: "MA", Name: "المغرب", DialCode: "+212", Flag: "🇲🇦"},
	{Code: "TN", Name: "تونس", DialCode: "+216", Flag: "🇹🇳"},
	{Code: "DZ", Name: "الجزائر", DialCode: "+213", Flag: "🇩🇿"},
	{Code: "MR", Name: "موريتانيا", DialCode: "+222", Flag: "🇲🇷"},
	{Code: "DJ", Name: "جيبوتي", DialCode: "+253", Flag: "🇩🇯"},
	{Code: "SO", Name: "الصومال", DialCode: "+252", Flag: "🇸🇴"},
	{Code: "KM", Name: "جزر القمر", DialCode: "+269", Flag: "🇰🇲"},
}
