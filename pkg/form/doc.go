// Package form holds the conversational form engine: the field descriptors a
// policy table is made of, the append-only AnswerSet threaded through a
// session, the Orchestrator that walks the table against a Prompter, and the
// assembly rules that turn the final answers into a commit message.
package form
