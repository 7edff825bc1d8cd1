package rules

import (
	"context"
	"fmt"
	"strings"
)

// HeaderBorder is the fixed-width comment border of the 42 header. Its
// presence anywhere in a document marks the document as already carrying a
// header, which makes header insertion idempotent.
const HeaderBorder = "/* ************************************************************************** */"

// headerTemplate renders the 42 attribution block. Column positions are a
// byte-for-byte contract with headers already present in existing codebases:
// the filename field is padded to filenameFieldWidth, the remaining fields
// occupy the template's fixed columns.
const headerTemplate = `/* ************************************************************************** */
/*                                                                            */
/*                                                        :::      ::::::::   */
/*   %[1]s                                          :+:      :+:    :+:   */
/*                                                    +:+ +:+         +:+     */
/*   By: %[2]s <%[3]s>                        +#+  +:+       +#+        */
/*                                                +#+#+#+#+#+   +#+           */
/*   Created: %[4]s by %[2]s            #+#    #+#             */
/*   Updated: %[5]s by %[2]s           ###   ########.fr       */
/*                                                                            */
/* ************************************************************************** */

`

const (
	filenameFieldWidth  = 51
	fallbackEmailDomain = "student.42.fr"
	headerTimeFormat    = "2006/01/02 15:04:05"
)

func padField(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// insertHeader prepends the 42 header unless the document already carries
// one. Overrides win over resolved configuration; the email falls back to
// git config and finally to "<author>@student.42.fr".
func (p *Pipeline) insertHeader(ctx context.Context, doc Document, opts Options) Document {
	if strings.Contains(doc.String(), HeaderBorder) {
		return doc
	}

	author := opts.Author
	if author == "" {
		author = p.cfg.Author
	}

	email := opts.Email
	if email == "" {
		email = p.cfg.Email
	}
	if email == "" && p.gitter != nil {
		if e, err := p.gitter.UserEmail(ctx); err == nil {
			email = e
		} else {
			p.logger.Debug("git email lookup failed", "error", err)
		}
	}
	if email == "" {
		email = author + "@" + fallbackEmailDomain
	}

	timestamp := p.now().Format(headerTimeFormat)
	header := fmt.Sprintf(headerTemplate,
		padField(opts.Filename, filenameFieldWidth), author, email, timestamp, timestamp)

	return NewDocument([]byte(header + doc.String()))
}
