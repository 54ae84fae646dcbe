package badge

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Card renders the printable badge of a preview.
func Card(p Preview) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		status := "badge--due"
		if p.Paid() {
			status = "badge--paid"
		}
		camp := p.Camp.Type
		if camp == "" {
			camp = fmt.Sprintf("#%d", p.Camp.ID)
		}
		_, err := fmt.Fprintf(w,
			`<article id="badge" class="badge %s"><header><h1>%s</h1><p class="badge__camp">%s</p><p class="badge__age">%s</p></header>`+
				`<img class="badge__qr" src="%s" alt="%s"><footer><code>%s</code></footer></article>`,
			status,
			templ.EscapeString(p.Participant.FullName()),
			templ.EscapeString(camp),
			templ.EscapeString(p.AgeRange),
			templ.EscapeString(p.QRDataURI),
			templ.EscapeString(p.QRContent),
			templ.EscapeString(p.Participant.Code),
		)
		return err
	})
}
