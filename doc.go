// Package asyncapitools provides tools for working with the server and
// security-scheme sections of AsyncAPI v3 documents.
//
// The library consists of three primary packages:
//
//   - parser: Typed models for servers, server variables, server bindings,
//     and security schemes, plus YAML/JSON document loading
//   - validator: Semantic validation the structural model deliberately
//     leaves unenforced (scheme-kind exclusivity, URL absoluteness,
//     dangling component references)
//   - aaerrors: Structured error types for programmatic handling via
//     errors.Is and errors.As
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/asyncapitools
//
// # Quick Start
//
// Parse the servers and security schemes of an AsyncAPI document:
//
//	import "github.com/erraggy/asyncapitools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("asyncapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for name, server := range result.Document.Servers {
//		fmt.Printf("%s: %s://%s\n", name, server.Value.Protocol, server.Value.Host)
//	}
//
// Validate server and security-scheme semantics:
//
//	import "github.com/erraggy/asyncapitools/validator"
//
//	result, err := validator.ValidateFile("asyncapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		fmt.Printf("Found %d errors\n", result.ErrorCount)
//	}
//
// A command-line interface is available under cmd/asyncapitools.
package asyncapitools
