package notification

import (
	"fmt"
	"strings"
	"time"
)

// RenderTemplate substitutes the recognized placeholders in tmpl with
// values from the device snapshot. Rendering is pure: it never fails,
// and placeholders outside the recognized set are left as literal text.
func RenderTemplate(tmpl string, dev DeviceContext) string {
	return render(tmpl, dev, "")
}

// RenderStatusTemplate renders a status-update template, additionally
// substituting {statusMessage} with the given Amharic status sentence.
func RenderStatusTemplate(tmpl string, dev DeviceContext, statusMessage string) string {
	return render(tmpl, dev, statusMessage)
}

func render(tmpl string, dev DeviceContext, statusMessage string) string {
	replacements := map[string]string{
		"customerName":            dev.CustomerName,
		"customerPhone":           dev.CustomerPhone,
		"deviceType":              dev.DeviceType,
		"brand":                   dev.Brand,
		"model":                   dev.Model,
		"problemDescription":      dev.ProblemDescription,
		"receiptNumber":           dev.ReceiptNumber,
		"status":                  dev.Status,
		"totalCost":               dev.TotalCost,
		"costInfo":                costInfo(dev.TotalCost),
		"estimatedCompletionDate": dev.EstimatedCompletionDate,
		"completionInfo":          completionInfo(dev.EstimatedCompletionDate),
		"statusMessage":           statusMessage,
	}

	out := tmpl
	for name, value := range replacements {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// costInfo is the derived cost fragment: empty when the cost is absent,
// otherwise an Amharic phrase embedding the amount.
func costInfo(totalCost string) string {
	if totalCost == "" {
		return ""
	}
	return fmt.Sprintf("ጠቅላላ ዋጋ፦ %s ብር። ", totalCost)
}

// completionInfo is the derived completion-date fragment: empty when no
// estimate exists, otherwise an Amharic phrase embedding the date.
func completionInfo(estimated string) string {
	if estimated == "" {
		return ""
	}
	return fmt.Sprintf("የሚጠናቀቅበት ቀን፦ %s። ", localizeDate(estimated))
}

// localizeDate reformats machine dates (RFC 3339 or YYYY-MM-DD) as
// DD/MM/YYYY for the message body. Unparseable values pass through.
func localizeDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}
