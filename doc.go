/*
Package switchboard is an MCP (Model Context Protocol) server that exposes a
CRM backend and a filesystem backend through a uniform tool registry,
argument validator and dispatcher.

Every tool is declared once, with its argument schema, in a fixed catalog.
The dispatcher validates each incoming argument bag against the declared
schema before the handler runs, so handlers only ever see complete, defaulted
argument sets. Tool failures of any kind come back as error-flagged results
rather than protocol errors; the only call that fails at the protocol level
is one naming a tool that does not exist.

# Architecture

The core follows a hexagonal layout. Handlers compose two capability ports:
a Store backed by SQLite for the CRM tables (customers, interactions, deals)
and a FileSystem backed by the host OS for the file tools. Both ports have
in-memory implementations under pkg/adapters/memory for tests and embedded
use. Transports (stdio and SSE, under pkg/adapters/mcp) sit on top of the
ports.Dispatcher interface and never reach around it.

# Usage

Initialize a Server with New and dispatch tool calls directly, or hand it
to the MCP adapter to serve clients:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/switchboard"
	)

	func main() {
		srv, err := switchboard.New("crm.db")
		if err != nil {
			log.Fatal(err)
		}
		defer srv.Close()

		res, err := srv.Dispatch(context.Background(), "add_customer", map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Text)
	}

The switchboard binary under cmd/switchboard wraps the same Server with
configuration, seeding and both MCP transports.
*/
package switchboard
