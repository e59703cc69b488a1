// Copyright 2025 The NoSQLBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

// DefaultDatabases is the fixed set of databases exercised by the
// benchmark suite, in canonical report order.
var DefaultDatabases = []string{"MongoDB", "Redis", "Cassandra", "Neo4j"}

// Default returns the catalog of the six benchmark scenarios run by
// the suite.
func Default() *Catalog {
	return New(
		Spec{
			ID:          "scenario1_crud",
			Name:        "CRUD Operations",
			Description: "Basic data operations: insert, read, update, delete.",
			Fields:      []string{"latency_ms", "total_time", "cpu_percent", "memory_percent"},
			Operations:  []string{"insert", "read", "update", "delete"},
		},
		Spec{
			ID:          "scenario2_iot",
			Name:        "IoT/Logs (Time-Series)",
			Description: "Time-series ingestion and range-query performance.",
			Fields:      []string{"insert_time", "insert_throughput", "range_query_time", "insert_cpu", "insert_mem"},
		},
		Spec{
			ID:          "scenario3_graph",
			Name:        "Graph Queries",
			Description: "Social-network style relationships and graph traversal.",
			Fields:      []string{"create_users_time", "create_friendships_time", "friends_of_friends_time", "three_level_time"},
		},
		Spec{
			ID:          "scenario4_keyvalue",
			Name:        "Key-Value Speed",
			Description: "Raw GET/SET operation speed.",
			Fields:      []string{"set_latency_ms", "get_latency_ms", "throughput_ops", "cpu_usage"},
		},
		Spec{
			ID:          "scenario5_fulltext",
			Name:        "Full-Text Search",
			Description: "Text indexing and search operations.",
			Fields:      []string{"insert_time", "index_build_time", "search_latency", "cpu_usage"},
		},
		Spec{
			ID:          "scenario6_scalability",
			Name:        "Scalability Test",
			Description: "Multi-threaded operations under concurrent load.",
			Fields:      []string{"create_time", "read_time", "update_time", "delete_time", "throughput_ops"},
		},
	)
}
