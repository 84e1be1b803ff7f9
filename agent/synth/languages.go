package synth

import (
	"strings"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// languagePack holds the fixed phrases of one reply language. Category,
// product and greeting entries are pyfmt templates over the keys
// {greeting} {name} {product} {tier} {channel} {sla}.
type languagePack struct {
	Name              string
	Greeting          string
	Hours             string
	GreetingLine      string
	ThankYou          string
	ProcessedThrough  string
	EUSpecialists     string
	Categories        map[contractx.Category]string
	ProductOwned      string
	ProductNone       string
	ProductWithheld   string
	ChannelNone       string
	NoticeCompliant   string
	NoticeRestricted  string
	CollaborationNote string
	Regards           string
	Footer            string
}

const defaultLanguage = "english"

var languagePacks = map[string]languagePack{
	"english": {
		Name:             "English",
		Greeting:         "Hello",
		Hours:            "hours",
		GreetingLine:     "{greeting} {name},",
		ThankYou:         "Thank you for contacting our Global Customer Support team.",
		ProcessedThrough: "Your inquiry has been processed through our advanced multi-region collaboration system",
		EUSpecialists:    ", including our EU compliance specialists",
		Categories: map[contractx.Category]string{
			contractx.CategoryTechnical: "Our technical analysis indicates you're experiencing issues with {product}. As a valued {tier} tier customer, this has been escalated to our specialist team who will contact you via {channel} within {sla}.",
			contractx.CategoryBilling:   "Regarding your billing inquiry for {product}, our billing specialists (coordinating between our US and EU teams) will review your {tier} tier account and contact you via {channel} within {sla}.",
			contractx.CategoryGeneral:   "Your general inquiry has been thoroughly reviewed by our multi-regional support team. Based on your {tier} tier status and your service history with {product}, we'll provide comprehensive assistance via {channel} within {sla}.",
			contractx.CategoryComplaint: "We are sorry to hear about your experience with {product}. As a {tier} tier customer, your complaint has been escalated to a senior support manager who will reach out via {channel} within {sla}.",
		},
		ProductOwned:      "your {product}",
		ProductNone:       "your account (no purchase history on file)",
		ChannelNone:       "your preferred contact channel",
		ProductWithheld:   "your account (purchase history not used)",
		NoticeCompliant:   "Data Protection Notice: This response was processed in full compliance with GDPR regulations. Your data was handled exclusively by our EU-based systems and agents.",
		NoticeRestricted:  "Data Protection Notice: Without your consent to personal data processing, access to your profile was restricted under GDPR and this response does not draw on your purchase history. Your data remained within our EU-based systems.",
		CollaborationNote: "This response was generated through collaboration between our US and EU support teams, ensuring you receive the highest quality of service across all regions.",
		Regards:           "Best regards,\nGlobal Customer Support Team",
		Footer:            "US Operations • EU Compliance • Multi-Regional Excellence",
	},
	"german": {
		Name:             "German",
		Greeting:         "Guten Tag",
		Hours:            "Stunden",
		GreetingLine:     "{greeting} {name},",
		ThankYou:         "Vielen Dank für Ihre Kontaktaufnahme mit unserem Global Customer Support Team.",
		ProcessedThrough: "Ihre Anfrage wurde durch unser fortschrittliches Multi-Region-Kollaborationssystem bearbeitet",
		EUSpecialists:    ", einschließlich unserer EU-Compliance-Spezialisten",
		Categories: map[contractx.Category]string{
			contractx.CategoryTechnical: "Unsere technische Analyse zeigt, dass Sie Probleme mit {product} haben. Als geschätzter {tier}-Tier-Kunde wurde dies an unser Spezialistenteam eskaliert, das Sie innerhalb von {sla} über {channel} kontaktieren wird.",
			contractx.CategoryBilling:   "Bezüglich Ihrer Rechnungsanfrage zu {product} werden unsere Rechnungsspezialisten (koordiniert zwischen unseren US- und EU-Teams) Ihr {tier}-Tier-Konto überprüfen und Sie innerhalb von {sla} über {channel} kontaktieren.",
			contractx.CategoryGeneral:   "Ihre allgemeine Anfrage wurde von unserem Multi-Regional-Support-Team gründlich überprüft. Basierend auf Ihrem {tier}-Tier-Status und Ihrer Service-Historie mit {product} werden wir Sie innerhalb von {sla} über {channel} umfassend unterstützen.",
			contractx.CategoryComplaint: "Es tut uns leid, dass Sie mit {product} unzufrieden sind. Als {tier}-Tier-Kunde wurde Ihre Beschwerde an einen leitenden Support-Manager eskaliert, der sich innerhalb von {sla} über {channel} bei Ihnen meldet.",
		},
		ProductOwned:      "Ihrem {product}",
		ProductNone:       "Ihrem Konto (keine Kaufhistorie hinterlegt)",
		ChannelNone:       "Ihren bevorzugten Kontaktweg",
		ProductWithheld:   "Ihrem Konto (Kaufhistorie nicht verwendet)",
		NoticeCompliant:   "Datenschutzhinweis: Diese Antwort wurde in vollständiger Übereinstimmung mit der DSGVO verarbeitet. Ihre Daten wurden ausschließlich von unseren EU-basierten Systemen und Agenten behandelt.",
		NoticeRestricted:  "Datenschutzhinweis: Ohne Ihre Einwilligung zur Datenverarbeitung wurde der Zugriff auf Ihr Profil gemäß DSGVO eingeschränkt (restricted), und diese Antwort verwendet Ihre Kaufhistorie nicht. Ihre Daten verblieben in unseren EU-basierten Systemen.",
		CollaborationNote: "Diese Antwort wurde durch die Zusammenarbeit zwischen unseren US- und EU-Support-Teams erstellt, um sicherzustellen, dass Sie die höchste Servicequalität in allen Regionen erhalten.",
		Regards:           "Mit freundlichen Grüßen,\nGlobal Customer Support Team",
		Footer:            "US-Betrieb • EU-Compliance • Multi-Regionale Exzellenz",
	},
	"french": {
		Name:             "French",
		Greeting:         "Bonjour",
		Hours:            "heures",
		GreetingLine:     "{greeting} {name},",
		ThankYou:         "Merci d'avoir contacté notre équipe de Global Customer Support.",
		ProcessedThrough: "Votre demande a été traitée par notre système avancé de collaboration multi-régionale",
		EUSpecialists:    ", incluant nos spécialistes de conformité UE",
		Categories: map[contractx.Category]string{
			contractx.CategoryTechnical: "Notre analyse technique indique que vous rencontrez des problèmes avec {product}. En tant que client estimé de niveau {tier}, ceci a été escaladé à notre équipe spécialisée qui vous contactera via {channel} dans les {sla}.",
			contractx.CategoryBilling:   "Concernant votre demande de facturation pour {product}, nos spécialistes de facturation (coordonnant entre nos équipes US et UE) examineront votre compte de niveau {tier} et vous contacteront via {channel} dans les {sla}.",
			contractx.CategoryGeneral:   "Votre demande générale a été soigneusement examinée par notre équipe de support multi-régionale. Sur la base de votre statut niveau {tier} et de votre historique avec {product}, nous vous fournirons une assistance complète via {channel} dans les {sla}.",
			contractx.CategoryComplaint: "Nous sommes désolés de votre expérience avec {product}. En tant que client de niveau {tier}, votre réclamation a été transmise à un responsable du support qui vous contactera via {channel} dans les {sla}.",
		},
		ProductOwned:      "votre {product}",
		ProductNone:       "votre compte (aucun historique d'achat enregistré)",
		ChannelNone:       "votre canal de contact préféré",
		ProductWithheld:   "votre compte (historique d'achat non utilisé)",
		NoticeCompliant:   "Avis Protection des Données: Cette réponse a été traitée en pleine conformité avec le règlement RGPD. Vos données ont été gérées exclusivement par nos systèmes et agents basés dans l'UE.",
		NoticeRestricted:  "Avis Protection des Données: Sans votre consentement, l'accès à votre profil a été restreint (restricted) conformément au RGPD et cette réponse n'utilise pas votre historique d'achat. Vos données sont restées dans nos systèmes basés dans l'UE.",
		CollaborationNote: "Cette réponse a été générée par la collaboration entre nos équipes de support US et UE, garantissant que vous recevez la plus haute qualité de service dans toutes les régions.",
		Regards:           "Cordialement,\nÉquipe Global Customer Support",
		Footer:            "Opérations US • Conformité UE • Excellence Multi-Régionale",
	},
	"italian": {
		Name:             "Italian",
		Greeting:         "Buongiorno",
		Hours:            "ore",
		GreetingLine:     "{greeting} {name},",
		ThankYou:         "Grazie per aver contattato il nostro team di Global Customer Support.",
		ProcessedThrough: "La vostra richiesta è stata elaborata attraverso il nostro avanzato sistema di collaborazione multi-regionale",
		EUSpecialists:    ", inclusi i nostri specialisti di conformità UE",
		Categories: map[contractx.Category]string{
			contractx.CategoryTechnical: "La nostra analisi tecnica indica che state riscontrando problemi con {product}. Come stimato cliente tier {tier}, questo è stato escalato al nostro team specialistico che vi contatterà tramite {channel} entro {sla}.",
			contractx.CategoryBilling:   "Riguardo alla vostra richiesta di fatturazione per {product}, i nostri specialisti di fatturazione (coordinandosi tra i team US e UE) esamineranno il vostro account tier {tier} e vi contatteranno tramite {channel} entro {sla}.",
			contractx.CategoryGeneral:   "La vostra richiesta generale è stata accuratamente esaminata dal nostro team di supporto multi-regionale. In base al vostro status tier {tier} e alla cronologia con {product}, forniremo assistenza completa tramite {channel} entro {sla}.",
			contractx.CategoryComplaint: "Ci dispiace per la vostra esperienza con {product}. Come cliente tier {tier}, il vostro reclamo è stato inoltrato a un responsabile del supporto che vi contatterà tramite {channel} entro {sla}.",
		},
		ProductOwned:      "il vostro {product}",
		ProductNone:       "il vostro account (nessuno storico acquisti registrato)",
		ChannelNone:       "il vostro canale di contatto preferito",
		ProductWithheld:   "il vostro account (storico acquisti non utilizzato)",
		NoticeCompliant:   "Avviso Protezione Dati: Questa risposta è stata elaborata in piena conformità con il regolamento GDPR. I vostri dati sono stati gestiti esclusivamente dai nostri sistemi e agenti basati nell'UE.",
		NoticeRestricted:  "Avviso Protezione Dati: In assenza del vostro consenso, l'accesso al vostro profilo è stato limitato (restricted) ai sensi del GDPR e questa risposta non utilizza lo storico acquisti. I vostri dati sono rimasti nei nostri sistemi basati nell'UE.",
		CollaborationNote: "Questa risposta è stata generata attraverso la collaborazione tra i nostri team di supporto US e UE, assicurando che riceviate la massima qualità del servizio in tutte le regioni.",
		Regards:           "Cordiali saluti,\nTeam Global Customer Support",
		Footer:            "Operazioni US • Conformità UE • Eccellenza Multi-Regionale",
	},
}

// packFor returns the pack for a language name, falling back to English.
func packFor(language string) languagePack {
	if p, ok := languagePacks[strings.ToLower(strings.TrimSpace(language))]; ok {
		return p
	}
	return languagePacks[defaultLanguage]
}
