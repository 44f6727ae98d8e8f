package help

import (
	"time"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// Article is one help center entry. The help center is static content
// shipped with the site; it still flows through the shared filter
// pipeline so search behaves the same as on the marketplace.
type Article struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Record adapts an article to the shared filter/sort pipeline
func (a Article) Record() listing.Record {
	return listing.Record{
		ID:          a.ID,
		Title:       a.Question,
		Description: a.Answer,
		Category:    a.Category,
		Tags:        a.Tags,
		CreatedAt:   time.Time{},
	}
}

// Articles is the published help center content, in display order
func Articles() []Article {
	return []Article{
		{
			ID:       "what-is-an-ai-employee",
			Question: "What is an AI employee?",
			Answer:   "An AI employee is an autonomous agent you hire from the marketplace to take over a recurring job function such as support triage, lead research, or reporting.",
			Category: "getting-started",
			Tags:     []string{"basics", "marketplace"},
		},
		{
			ID:       "how-do-i-hire",
			Question: "How do I hire an AI employee?",
			Answer:   "Browse the marketplace, open an agent profile, and choose a billing period. Checkout redirects you to our payment provider and the agent appears in your dashboard once payment completes.",
			Category: "getting-started",
			Tags:     []string{"checkout", "billing"},
		},
		{
			ID:       "change-plan",
			Question: "Can I change my plan later?",
			Answer:   "Yes. Upgrades take effect immediately and downgrades at the end of the current billing period. Your agents and their history are kept across plan changes.",
			Category: "billing",
			Tags:     []string{"plans", "upgrade"},
		},
		{
			ID:       "refunds",
			Question: "What is your refund policy?",
			Answer:   "Monthly subscriptions can be cancelled at any time and stop billing at the end of the period. Annual plans are refundable within the first 30 days.",
			Category: "billing",
			Tags:     []string{"refund", "cancellation"},
		},
		{
			ID:       "data-security",
			Question: "How is my data protected?",
			Answer:   "All data is encrypted in transit and at rest. Agents only access the connections you grant, and access can be revoked per agent from the dashboard.",
			Category: "security",
			Tags:     []string{"encryption", "privacy"},
		},
		{
			ID:       "integrations",
			Question: "Which tools do agents integrate with?",
			Answer:   "Agents connect to common CRMs, help desks, email providers, and data warehouses. Each agent profile lists its supported integrations.",
			Category: "product",
			Tags:     []string{"crm", "helpdesk", "integrations"},
		},
		{
			ID:       "human-handoff",
			Question: "Can an agent hand off to a human?",
			Answer:   "Yes. Every agent has an escalation rule set; when triggered, the task is routed to a teammate with full context attached.",
			Category: "product",
			Tags:     []string{"escalation", "workflow"},
		},
		{
			ID:       "talk-to-sales",
			Question: "How do I talk to sales?",
			Answer:   "Use the contact form on the contact page. Enterprise inquiries are answered within one business day.",
			Category: "getting-started",
			Tags:     []string{"contact", "enterprise"},
		},
	}
}
