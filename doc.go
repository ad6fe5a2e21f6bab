// Package graphley is a client for Cayley-compatible graph databases.
//
// It models graph edges as quads for bulk writes (package quad), builds
// Gremlin-dialect traversal queries fluently (package gremlin), and ships
// both to the database's HTTP API:
//
//	g := gremlin.NewGraph()
//	client, err := graphley.NewClient(graphley.WithURL("http://localhost:64210"))
//	if err != nil {
//		// ...
//	}
//
//	resp, err := client.Query(ctx, g.V("alice").Out("follows").All())
//
//	quads := quad.NewSet(quad.New("alice", "follows", "bob"))
//	_, err = client.Write(ctx, quads)
//
// The client performs exactly one request per call: retries, auth and
// connection pooling beyond the underlying http.Client are the caller's
// concern.
package graphley
