package retail

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

var feedbackColumns = []string{
	"Feedback_ID", "Product_ID", "Customer_ID", "Date", "Feedback_Text", "Feedback_Rating",
}

// Feedback is a review left some days after a transaction.
type Feedback struct {
	ID         string
	ProductID  string
	CustomerID string
	Date       time.Time
	Text       string
	Rating     int
}

// Row renders the feedback in feedbackColumns order.
func (f Feedback) Row() []any {
	return []any{f.ID, f.ProductID, f.CustomerID, f.Date, f.Text, f.Rating}
}

// GenerateFeedback gives each sale, independently, a FeedbackChance of
// receiving feedback dated 1-30 days after the sale. The text is drawn
// uniformly from FeedbackTexts and the rating looked up from it.
func (g *Generator) GenerateFeedback(sales []Sale) ([]Feedback, error) {
	texts := make([]string, 0, len(g.opts.FeedbackTexts))
	for text := range g.opts.FeedbackTexts {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	if len(texts) == 0 && g.opts.FeedbackChance > 0 {
		return nil, errors.New("no feedback texts configured")
	}

	var feedback []Feedback
	for _, sale := range sales {
		if !g.faker.Chance(g.opts.FeedbackChance) {
			continue
		}
		date := sale.Date.AddDate(0, 0, g.faker.Int(1, 30))
		text := datagen.Choose(g.faker, texts)
		feedback = append(feedback, Feedback{
			ID:         fmt.Sprintf("FB%07d", len(feedback)+1),
			ProductID:  sale.ProductID,
			CustomerID: sale.CustomerID,
			Date:       date,
			Text:       text,
			Rating:     g.opts.FeedbackTexts[text],
		})
	}
	return feedback, nil
}
