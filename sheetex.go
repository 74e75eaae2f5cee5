// Package sheetex extracts single-product "technical sheet" PDFs from
// multi-page product catalogs. It analyzes catalog structure locally,
// asks an LLM to resolve page-to-product boundaries, and splits the
// source PDF into one file per detected product.
//
// This package contains domain types, interfaces, and pure logic
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g.
// tabula/, pdfcpu/, gemini/).
package sheetex
