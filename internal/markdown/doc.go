// Package markdown reduces markdown documents to the plain prose that the
// spelling detector should see.
//
// The extraction is a fixed-order regular-expression pipeline, not a parser:
// fenced code blocks and inline code spans are removed outright, links and
// images collapse to their visible text, and heading/emphasis markers are
// unwrapped. The rule order is load-bearing; link unwrapping runs before the
// image form, so image markers degrade to a bang followed by the alt text.
package markdown
