package knowledge

// Static Iron Lady catalog. Loaded once at process start via New().

func loadPrograms() []Program {
	return []Program{
		{
			Name:        "Leadership Essentials Program",
			Duration:    "Flexible cohort-based learning",
			Format:      "Hybrid (Online + In-person workshops)",
			Price:       "Contact for pricing",
			Description: "Are you often asked to 'Learn to BALANCE'? Do you feel 'Guilty' about being Ambitious? This program teaches you the art of maximizing, shameless pitching, and dealing with office politics and biases. Be unapologetically ambitious.",
			Highlights: []string{
				"Master the art of maximizing without guilt",
				"Shameless pitching and self-advocacy",
				"Navigate office politics and combat biases",
				"Unapologetic ambition development",
				"Break free from 'balance' expectations",
			},
			TargetAudience: "Women professionals aspiring for growth",
			Prerequisites:  "Open to ambitious women at all career levels",
			KeyOutcomes:    "Become unapologetically ambitious and master workplace warfare tactics",
		},
		{
			Name:        "100 Board Members Program",
			Duration:    "Intensive fast-track program",
			Format:      "Comprehensive online + exclusive networking events",
			Price:       "Premium investment - Contact for details",
			Description: "Feeling stuck at the same level in your career with no tactics working? This program teaches innovative techniques to fast-track your overdue growth and break through career plateaus.",
			Highlights: []string{
				"Innovative breakthrough techniques",
				"Fast-track career advancement strategies",
				"Board-level positioning and visibility",
				"Strategic networking for top positions",
				"Break through career stagnation",
			},
			TargetAudience: "Mid to senior-level women leaders ready for breakthrough",
			Prerequisites:  "Current leadership role or extensive professional experience",
			KeyOutcomes:    "Achieve the breakthrough and growth you deserve",
		},
		{
			Name:        "Master of Business Warfare",
			Duration:    "Comprehensive flagship program",
			Format:      "Elite cohort with global practitioners",
			Price:       "Premium - Investment for C-suite aspirants",
			Description: "Committed to reaching the C-suite but don't know how? Is 1+ Crore income your dream? This flagship program teaches cutting-edge business warfare tactics for breakthrough results in your career.",
			Highlights: []string{
				"C-suite pathway strategies",
				"Business warfare tactics from global practitioners",
				"Achieve 1+ Crore income goals",
				"Win without making others lose",
				"Transformative results in minimal time",
				"Join 78,000+ Women Leaders' Ecosystem",
			},
			TargetAudience: "Senior professionals and entrepreneurs targeting C-suite",
			Prerequisites:  "Significant professional experience and serious commitment",
			KeyOutcomes:    "Master business warfare tactics for C-suite success and exceptional income growth",
		},
		{
			Name:        "Business War Tactics Masterclass",
			Duration:    "Intensive workshop series",
			Format:      "Interactive sessions + practical implementation",
			Price:       "Contact for latest offerings",
			Description: "Learn to implement strategies that generate transformative results in the smallest possible time. Develop an unapologetic winning mindset - stop 'just adjusting', 'suffering', or 'stop dreaming'.",
			Highlights: []string{
				"Fast-track growth strategies",
				"Winning without others losing",
				"Combat office politics effectively",
				"Develop unapologetic winning mindset",
				"Learn from global practitioners' expertise",
			},
			TargetAudience: "Women professionals and business owners",
			Prerequisites:  "Open to all ambitious women leaders",
			KeyOutcomes:    "Achieve breakthrough results fast",
		},
		{
			Name:        "Winning Mindset Development",
			Duration:    "Transformative coaching program",
			Format:      "Group coaching + personal sessions",
			Price:       "Contact for details",
			Description: "We enable women to develop mindsets towards 'Winning'. Winning doesn't mean others need to lose! Stop being told to 'suffer', 'just adjust', and 'stop dreaming'. Join our non-judgmental community that celebrates ambitions.",
			Highlights: []string{
				"Develop unapologetic winning mindset",
				"Win without fighting (even if challenged)",
				"Personal learnings and growth experiences",
				"Join supportive, non-judgmental community",
				"Celebrate your ambitions and successes",
			},
			TargetAudience: "Women seeking career change/restart and entrepreneurs",
			Prerequisites:  "Commitment to personal transformation",
			KeyOutcomes:    "Develop an unapologetic winning mindset",
		},
	}
}

func loadFAQs() []FAQ {
	return []FAQ{
		{
			Question: "Who is Iron Lady for?",
			Answer:   "Iron Lady is for ambitious women who refuse to 'just adjust' or 'stop dreaming'. Our community includes: Professionals aspiring for growth, Entrepreneurs/Business Women/Self-employed, and Women seeking career change or restart. We're for women who want to WIN unapologetically!",
		},
		{
			Question: "What makes Iron Lady different?",
			Answer:   "We don't teach you to 'balance' or 'suffer' - we teach you to WIN! Our approach combines 'breakthrough' and 'results-focused' thinking with Business War Tactics. We're unconventionally taking risks and judging non-judgmentally. Iron Lady communities share real ambitions, celebrate each other's successes, and practice tactics used by global practitioners, entrepreneurs, and CEOs who have become award-winners.",
		},
		{
			Question: "What is Business Warfare?",
			Answer:   "Business War Tactics enable women to learn to win without fighting! Our tactics implement strategies that generate transformative results in the smallest possible time. We teach winning formulas and methodologies from global practitioners' expertise, combined with personal learnings and experiences.",
		},
		{
			Question: "Can I really achieve C-suite level and 1+ Crore income?",
			Answer:   "Absolutely! Our Master of Business Warfare program is specifically designed for this. We teach cutting-edge business warfare tactics practiced by global practitioners. Remember: Winning doesn't mean others need to lose! Join our 78,000+ Women Leaders' Ecosystem.",
		},
		{
			Question: "How do I join the Iron Lady community?",
			Answer:   "Contact us at +91-6360823123 or explore our programs. We have programs for different career stages and goals. Whether you're stuck at the same level, feel guilty about ambition, or ready for the C-suite, we have a path for you.",
		},
		{
			Question: "Are the programs available internationally?",
			Answer:   "Yes! Our content is created, used, and practiced by global practitioners, entrepreneurs, and CEOs. We offer online and hybrid formats accessible worldwide, with our community spanning across the globe.",
		},
		{
			Question: "What is the Iron Lady mission?",
			Answer:   "ELEVATING A MILLION WOMEN TO THE TOP. We enable women to develop mindsets towards 'Winning' through our non-judgmental, celebration-focused learning sessions. Every woman is common in being uncommon in the business world - we celebrate that!",
		},
	}
}

func loadEnrollment() Enrollment {
	return Enrollment{
		Steps: []string{
			"Explore our programs and choose the one aligned with your breakthrough goals",
			"Contact us at +91-6360823123 or through our website",
			"Schedule a consultation to discuss your ambitions and goals",
			"Receive program details, investment information, and next cohort dates",
			"Join the Iron Lady community and start your transformation",
			"Become part of our 78,000+ Women Leaders' Ecosystem",
		},
		Requirements: []string{
			"Commitment to your own growth and success",
			"Willingness to embrace an unapologetic winning mindset",
			"Readiness to challenge 'balance' and 'adjust' mentality",
			"Ambition to achieve breakthrough results",
		},
		PaymentOptions: []string{
			"Contact our team for program investment details",
			"Flexible payment options available",
			"Corporate sponsorship programs",
			"Special offers for group enrollments",
		},
		StartDates: "Multiple cohorts throughout the year - Contact for latest schedule",
		Contact: Contact{
			Phone:         "+91-6360823123",
			Website:       "www.ironlady.com",
			Mission:       "ELEVATING A MILLION WOMEN TO THE TOP",
			CommunitySize: "78,000+ Women Leaders' Ecosystem",
		},
		WhoShouldJoin: []string{
			"Professionals aspiring for growth",
			"Entrepreneurs/Business Women/Self-employed",
			"Women seeking career change/restart",
		},
	}
}
