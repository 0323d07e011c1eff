// Package links builds the user-initiated outbound links: a WhatsApp deep
// link and an email compose link, both derived client-side from the current
// configuration and the generated letter. No server round-trip is involved.
package links

import (
	"fmt"
	"net/url"
	"regexp"

	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"
)

var nonDigits = regexp.MustCompile(`\D`)

// WhatsApp returns the wa.me deep link carrying the localized summary block,
// the letter and the follow-up footer. Empty when no contact number is
// configured.
func WhatsApp(cfg models.AppConfig, lang i18n.Language, record models.AgencyRecord, letter string) string {
	if cfg.ContactWhatsapp == "" {
		return ""
	}
	number := nonDigits.ReplaceAllString(cfg.ContactWhatsapp, "")

	message := fmt.Sprintf(`*%s*
---------------------------
*%s:* %s
*%s:* %s
*%s:* %s
*%s:* %s
*%s:* %s (ID: %s)
---------------------------

*%s:*
%s

---------------------------
%s`,
		i18n.T(lang, "title"),
		i18n.T(lang, "agencyName"), record.AgencyName,
		i18n.T(lang, "country"), record.Country,
		i18n.T(lang, "agentId"), record.AgentID,
		i18n.T(lang, "whatsapp"), record.Whatsapp,
		i18n.T(lang, "adminName"), record.AdminName, record.AdminID,
		i18n.T(lang, "letterTitle"), letter,
		i18n.T(lang, "whatsappFooter"),
	)

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// Email returns the mailto compose link with the localized subject and the
// summary plus letter as body. Empty when no contact address is configured.
func Email(cfg models.AppConfig, lang i18n.Language, record models.AgencyRecord, letter string) string {
	if cfg.ContactEmail == "" {
		return ""
	}

	subject := fmt.Sprintf("%s: %s", i18n.T(lang, "title"), record.AgencyName)
	body := fmt.Sprintf(`%s:
---------------------------
%s: %s
%s: %s
%s: %s
%s: %s
%s: %s
%s: %s

---------------------------
%s:
%s
`,
		i18n.T(lang, "agencyInfo"),
		i18n.T(lang, "agencyName"), record.AgencyName,
		i18n.T(lang, "country"), record.Country,
		i18n.T(lang, "agentId"), record.AgentID,
		i18n.T(lang, "whatsapp"), record.Whatsapp,
		i18n.T(lang, "adminName"), record.AdminName,
		i18n.T(lang, "adminId"), record.AdminID,
		i18n.T(lang, "letterTitle"), letter,
	)

	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	return "mailto:" + cfg.ContactEmail + "?" + params.Encode()
}
