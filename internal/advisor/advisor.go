package advisor

import (
	"context"

	"sjsage522/courseadvisor/internal/recommend"
)

// Advisor runs the recommendation query over loaded datasets and asks the
// completer to turn the ranked candidates into advice
type Advisor struct {
	Completer Completer
	Courses   []recommend.CourseRecord
	Ratings   []recommend.RatingRecord
}

// Advice is a ranked result plus the generated text
type Advice struct {
	Recommendations recommend.Result `json:"recommendations"`
	Prompt          string           `json:"prompt"`
	Reply           Message          `json:"message"`
}

// Rank runs the query only
func (a *Advisor) Rank(interests []string, pref recommend.WorkloadPreference) recommend.Result {
	return recommend.Recommend(interests, pref, a.Courses, a.Ratings)
}

// Advise ranks the courses, embeds the result in a prompt and returns the
// completer's reply. Ranking output is returned even when completion fails.
func (a *Advisor) Advise(ctx context.Context, interests []string, pref recommend.WorkloadPreference) (*Advice, error) {
	result := a.Rank(interests, pref)
	prompt := recommend.BuildPrompt(interests, pref, result)

	advice := &Advice{Recommendations: result, Prompt: prompt}
	reply, err := a.Completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: recommend.SystemPrompt},
		{Role: RoleUser, Content: prompt},
	})
	if err != nil {
		return advice, err
	}
	advice.Reply = reply
	return advice, nil
}
