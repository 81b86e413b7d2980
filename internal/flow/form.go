package flow

import "strings"

// Submission is the typed form-result record built at the form boundary.
// Nothing past this point inspects raw key-value text.
type Submission struct {
	Name     string
	ImageURL string
	Channel  string
	Variants string
}

// CreateFormTemplate is the create form the bot hands to the operator. They
// fill it in and send it back as one message.
const CreateFormTemplate = `name:
image:
channel:
variants:
1K Followers,€3.00,10`

// ParseForm converts a raw create-form message into a Submission. Labeled
// header lines (name:/image:/channel:) fill the scalar fields; everything
// after the variants: header is raw variant text for the parser. Unknown
// lines before the variants block are ignored.
func ParseForm(text string) Submission {
	var sub Submission
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "name:"):
			sub.Name = strings.TrimSpace(trimmed[len("name:"):])
		case strings.HasPrefix(lower, "image:"):
			sub.ImageURL = strings.TrimSpace(trimmed[len("image:"):])
		case strings.HasPrefix(lower, "channel:"):
			sub.Channel = strings.TrimSpace(trimmed[len("channel:"):])
		case strings.HasPrefix(lower, "variants:"):
			rest := strings.TrimSpace(trimmed[len("variants:"):])
			block := strings.Join(lines[i+1:], "\n")
			if rest != "" {
				block = rest + "\n" + block
			}
			sub.Variants = block
			return sub
		}
	}
	return sub
}
