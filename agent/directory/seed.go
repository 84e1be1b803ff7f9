package directory

import contractx "github.com/tanpawarit/global-support-collab/agent/contract"

// SeedCustomers returns the synthetic demo customers.
func SeedCustomers() []contractx.Customer {
	return []contractx.Customer{
		{
			ID:               "cust-us-001",
			Name:             "Sarah Johnson",
			Email:            "sarah.johnson@email.com",
			Region:           contractx.RegionUS,
			Tier:             contractx.TierGold,
			Language:         "English",
			GDPRConsent:      false,
			LastContact:      "2024-09-05T14:30:00Z",
			PreferredChannel: "email",
			Purchases: []contractx.Purchase{
				{ID: "p1", Product: "Enterprise Security Suite", Amount: 2500.0, Date: "2024-08-15", Status: "completed"},
				{ID: "p2", Product: "Compliance Module", Amount: 800.0, Date: "2024-09-01", Status: "completed"},
			},
		},
		{
			ID:               "cust-eu-001",
			Name:             "Hans Müller",
			Email:            "hans.mueller@email.de",
			Region:           contractx.RegionEU,
			Tier:             contractx.TierPlatinum,
			Language:         "German",
			GDPRConsent:      true,
			LastContact:      "2024-09-08T09:15:00Z",
			PreferredChannel: "phone",
			Purchases: []contractx.Purchase{
				{ID: "p3", Product: "Advanced Threat Detection", Amount: 5000.0, Date: "2024-07-20", Status: "completed"},
				{ID: "p4", Product: "GDPR Compliance Tools", Amount: 1200.0, Date: "2024-08-30", Status: "completed"},
			},
		},
		{
			ID:               "cust-eu-002",
			Name:             "Marie Dubois",
			Email:            "marie.dubois@email.fr",
			Region:           contractx.RegionEU,
			Tier:             contractx.TierSilver,
			Language:         "French",
			GDPRConsent:      true,
			LastContact:      "2024-09-10T16:45:00Z",
			PreferredChannel: "chat",
			Purchases: []contractx.Purchase{
				{ID: "p5", Product: "Basic Security Package", Amount: 1000.0, Date: "2024-08-25", Status: "completed"},
			},
		},
		{
			ID:               "cust-eu-003",
			Name:             "Klaus Weber",
			Email:            "klaus.weber@email.de",
			Region:           contractx.RegionEU,
			Tier:             contractx.TierPlatinum,
			Language:         "German",
			GDPRConsent:      true,
			LastContact:      "2024-09-11T08:30:00Z",
			PreferredChannel: "email",
			Purchases: []contractx.Purchase{
				{ID: "p7", Product: "Enterprise Security Suite", Amount: 3500.0, Date: "2024-08-20", Status: "completed"},
				{ID: "p8", Product: "Advanced Analytics Module", Amount: 1500.0, Date: "2024-09-05", Status: "completed"},
			},
		},
		{
			ID:               "cust-eu-004",
			Name:             "Marco Rossi",
			Email:            "marco.rossi@email.it",
			Region:           contractx.RegionEU,
			Tier:             contractx.TierGold,
			Language:         "Italian",
			GDPRConsent:      true,
			LastContact:      "2024-09-09T14:15:00Z",
			PreferredChannel: "phone",
			Purchases: []contractx.Purchase{
				{ID: "p9", Product: "Professional Security Tools", Amount: 2200.0, Date: "2024-08-28", Status: "completed"},
				{ID: "p10", Product: "Compliance Dashboard", Amount: 800.0, Date: "2024-09-02", Status: "completed"},
			},
		},
		{
			ID:               "cust-us-002",
			Name:             "Robert Chen",
			Email:            "robert.chen@email.com",
			Region:           contractx.RegionUS,
			Tier:             contractx.TierBronze,
			Language:         "English",
			GDPRConsent:      false,
			LastContact:      "2024-09-03T11:20:00Z",
			PreferredChannel: "email",
			Purchases: []contractx.Purchase{
				{ID: "p6", Product: "Starter Security Tools", Amount: 500.0, Date: "2024-08-10", Status: "completed"},
			},
		},
	}
}

// SampleQuery is a canned request offered to demo callers.
type SampleQuery struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Message    string             `json:"message"`
	Priority   contractx.Priority `json:"priority"`
	Category   contractx.Category `json:"category"`
}

func SampleQueries() []SampleQuery {
	return []SampleQuery{
		{
			ID:         "q1",
			CustomerID: "cust-us-001",
			Message:    "I'm having trouble with the new compliance module. It keeps showing false positives for our internal communications.",
			Priority:   contractx.PriorityHigh,
			Category:   contractx.CategoryTechnical,
		},
		{
			ID:         "q2",
			CustomerID: "cust-eu-001",
			Message:    "I need to understand how your threat detection system handles GDPR data processing requirements.",
			Priority:   contractx.PriorityMedium,
			Category:   contractx.CategoryGeneral,
		},
		{
			ID:         "q3",
			CustomerID: "cust-eu-002",
			Message:    "Can I get a refund for the security package? It doesn't meet our current needs.",
			Priority:   contractx.PriorityHigh,
			Category:   contractx.CategoryBilling,
		},
		{
			ID:         "q4",
			CustomerID: "cust-us-002",
			Message:    "How do I upgrade from Bronze to Silver tier? What are the additional features?",
			Priority:   contractx.PriorityLow,
			Category:   contractx.CategoryGeneral,
		},
		{
			ID:         "q5",
			CustomerID: "cust-eu-003",
			Message:    "Guten Tag, ich habe Probleme mit dem neuen Analytics-Modul. Die Berichte werden nicht korrekt generiert und zeigen falsche Metriken an. Können Sie mir bei der Konfiguration helfen?",
			Priority:   contractx.PriorityHigh,
			Category:   contractx.CategoryTechnical,
		},
		{
			ID:         "q6",
			CustomerID: "cust-eu-004",
			Message:    "Buongiorno, vorrei sapere come posso aggiornare il mio piano attuale per includere funzionalità di compliance avanzate. Il nostro team ha bisogno di maggiori strumenti di reporting per conformità normative.",
			Priority:   contractx.PriorityMedium,
			Category:   contractx.CategoryGeneral,
		},
	}
}
