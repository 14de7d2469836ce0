package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	domainrepo "github.com/johnquangdev/insight-stream/internal/domain/repositories"
)

type seedResult struct {
	Meetings int
	Contacts int
}

type sampleMeeting struct {
	title      string
	daysAgo    int
	transcript string
	report     entities.Report
	filePath   string
}

var sampleMeetings = []sampleMeeting{
	{
		title:   "Q4 Strategic Review & Roadmap",
		daysAgo: 2,
		transcript: `David Kim: Alright everyone, let's get started with the Q4 review. Overall, I think we had a fantastic quarter.
Sarah Chen: I agree, David. The revenue numbers look great. We exceeded our targets by 15%, largely thanks to the new enterprise clients we onboarded in November.
Michael Ross: That's excellent news. However, I want to bring up the server costs. With the traffic spike, our infrastructure bill went up by about 20%. We need to look into optimizing that.
David Kim: Good point, Michael. I'll add that to the action items. We need an audit of our cloud usage.
Elena Rodriguez: What about the AI integration? Are we still on track for the Q1 launch?
David Kim: Yes, the engineering team has made great progress. We're in the final testing phase. We should be ready to ship by the end of January.
Sarah Chen: Speaking of engineering, I'm seeing some signs of burnout in the team. We pushed hard for this release. We really need to accelerate the hiring plan for those backend roles.
David Kim: I hear you, Sarah. Let's get those requisitions approved immediately. We can't afford to lose key people.
Michael Ross: Agreed. I'll sign off on the budget for two new engineers.
Elena Rodriguez: Perfect. Let's also schedule a retrospective with the team to discuss how we can improve work-life balance moving forward.
David Kim: Done. Great work everyone. Let's keep this momentum going into the new year.`,
		report: entities.Report{
			"Summary": "The Q4 review covered key performance metrics, the roadmap for next quarter, and challenges in engineering and sales. Revenue exceeded targets by 15%. The AI integration features are set to launch in Q1. Server costs and team burnout need attention.",
			"Key_Insights": []interface{}{
				"Revenue exceeded Q4 targets by 15%, driven by enterprise adoption.",
				"AI Integration features are on track for a Q1 launch but require final QA.",
				"Backend server costs have increased by 20% due to higher traffic.",
				"Engineering team is reporting signs of burnout; hiring plan needs acceleration.",
			},
			"Next_Steps": []interface{}{
				"Finalize QA for AI Integration features by Jan 30.",
				"Audit cloud infrastructure to optimize server costs.",
				"Approve headcount for 2 new backend engineers.",
				"Schedule a team retrospective to address burnout concerns.",
			},
			"Conversation_Graph": map[string]interface{}{
				"People":    []interface{}{"David Kim", "Sarah Chen", "Michael Ross", "Elena Rodriguez"},
				"Companies": []interface{}{"TechVentures", "Atlas Capital", "Stripe", "GreenTech Solutions"},
				"Topics":    []interface{}{"Revenue", "AI Integration", "Hiring", "Burnout", "Infrastructure"},
			},
		},
		filePath: "uploads/q4_strategic_review.mp4",
	},
	{
		title:   "Acme Corp Partnership Sync",
		daysAgo: 5,
		transcript: `Sarah Chen: Thanks for joining. Quick update on the Acme Corp deal. They sent over the revised contract.
Elena Rodriguez: How does the revenue share look?
Sarah Chen: It's still 70/30 in our favor, which is great. But I'm worried about the IP indemnification section. It feels a bit too broad.
Elena Rodriguez: I see. We definitely need Legal to take a close look at that. We don't want any exposure there.
Sarah Chen: Agreed. I'll forward it to them today. If they clear it, do we want to sign the MOU next week?
Elena Rodriguez: Yes, let's aim for that. The distribution access they offer is too good to pass up.
Sarah Chen: Okay, I'll set up a follow-up call with their team for Tuesday.`,
		report: entities.Report{
			"Summary": "A quick sync on the Acme Corp partnership proposal. The consensus is positive but Legal must review the IP clauses. The goal is to sign the MOU next week.",
			"Key_Insights": []interface{}{
				"Acme Corp partnership offers significant distribution channel access.",
				"IP indemnification clauses in the current draft are too broad.",
				"Revenue share split is favorable at 70/30.",
			},
			"Next_Steps": []interface{}{
				"Send contract to Legal for IP clause review.",
				"Schedule follow-up call with Acme Corp for Tuesday.",
				"Draft press release for potential announcement.",
			},
			"Conversation_Graph": map[string]interface{}{
				"People":    []interface{}{"Sarah Chen", "Elena Rodriguez", "John Smith (Acme)"},
				"Companies": []interface{}{"Acme Corp"},
				"Topics":    []interface{}{"Partnership", "Legal", "Distribution"},
			},
		},
		filePath: "uploads/acme_partnership_sync.mp4",
	},
}

var sampleContacts = []struct {
	contact  entities.Contact
	topics   []string
	timeline []entities.TimelineEvent
}{
	{
		contact: entities.Contact{Name: "Sarah Chen", Role: "CTO", Company: "TechVentures", Avatar: "SC", Style: "Direct, Data-driven", LastContact: "6 months ago", TotalMeetings: 12},
		topics:  []string{"AI Ethics", "M&A", "Engineering"},
		timeline: []entities.TimelineEvent{
			{ID: 1, Date: "Jan 2024", Event: "Coffee at Starbucks", Topics: []string{"Merger", "Golf"}, Sentiment: "positive"},
			{ID: 2, Date: "Mar 2024", Event: "Board Meeting", Topics: []string{"Q1 Review", "Hiring"}, Sentiment: "neutral"},
		},
	},
	{
		contact: entities.Contact{Name: "Michael Ross", Role: "Partner", Company: "Atlas Capital", Avatar: "MR", Style: "Analytical, Reserved", LastContact: "8 months ago", TotalMeetings: 8},
		topics:  []string{"Series C", "Valuation", "Board"},
	},
	{
		contact: entities.Contact{Name: "David Kim", Role: "VP Engineering", Company: "Stripe", Avatar: "DK", Style: "Collaborative, Technical", LastContact: "3 weeks ago", TotalMeetings: 15},
		topics:  []string{"Payments", "API", "Integration"},
	},
	{
		contact: entities.Contact{Name: "Elena Rodriguez", Role: "CEO", Company: "GreenTech Solutions", Avatar: "ER", Style: "Visionary, Persuasive", LastContact: "7 months ago", TotalMeetings: 5},
		topics:  []string{"Sustainability", "Partnership", "Growth"},
	},
}

// seed inserts the sample data into empty tables
func seed(ctx context.Context, meetings domainrepo.MeetingRepository, contacts domainrepo.ContactRepository) (seedResult, error) {
	var res seedResult

	_, total, err := meetings.List(ctx, 1, 0)
	if err != nil {
		return res, fmt.Errorf("count meetings: %w", err)
	}
	if total == 0 {
		for _, s := range sampleMeetings {
			summary, err := json.Marshal(s.report)
			if err != nil {
				return res, err
			}
			m := entities.NewMeeting(s.title, s.transcript, s.filePath)
			m.Date = time.Now().UTC().AddDate(0, 0, -s.daysAgo)
			m.SummaryText = string(summary)
			if err := meetings.CreateWithInsights(ctx, m, entities.InsightsFromReport(m.ID, s.report)); err != nil {
				return res, fmt.Errorf("seed meeting %q: %w", s.title, err)
			}
			res.Meetings++
		}
	}

	existing, err := contacts.List(ctx)
	if err != nil {
		return res, fmt.Errorf("count contacts: %w", err)
	}
	if len(existing) == 0 {
		for _, s := range sampleContacts {
			c := s.contact
			c.Topics = mustJSON(s.topics)
			c.Timeline = mustJSON(s.timeline)
			if err := contacts.Create(ctx, &c); err != nil {
				return res, fmt.Errorf("seed contact %q: %w", c.Name, err)
			}
			res.Contacts++
		}
	}

	return res, nil
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
