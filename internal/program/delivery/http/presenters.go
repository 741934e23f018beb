package http

import (
	"ironlady-assistant/internal/knowledge"
	"ironlady-assistant/internal/program"
)

// --- Response DTOs ---

type listResp struct {
	Programs []knowledge.Program `json:"programs"`
}

func (h *handler) newListResp(out program.ListOutput) listResp {
	return listResp{Programs: out.Programs}
}

type searchResp struct {
	Programs []knowledge.Program `json:"programs"`
	Query    string              `json:"query"`
	Total    int                 `json:"total"`
}

func (h *handler) newSearchResp(out program.SearchOutput) searchResp {
	return searchResp{
		Programs: out.Programs,
		Query:    out.Query,
		Total:    len(out.Programs),
	}
}

type faqsResp struct {
	FAQs []knowledge.FAQ `json:"faqs"`
}

func (h *handler) newFAQsResp(out program.FAQsOutput) faqsResp {
	return faqsResp{FAQs: out.FAQs}
}

type enrollmentResp struct {
	Enrollment knowledge.Enrollment `json:"enrollment"`
}

func (h *handler) newEnrollmentResp(out program.EnrollmentOutput) enrollmentResp {
	return enrollmentResp{Enrollment: out.Enrollment}
}
