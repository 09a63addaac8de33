// Package jsonschemax compiles JSON Schema Draft-07 documents into reusable
// boolean validators and resolves $ref/$id references across a closed set of
// schemas supplied up front - no network access is ever performed.
//
// Compile a schema once and reuse the resulting *Schema across goroutines:
//
//	schema, err := jsonschemax.Compile(schemaDoc, jsonschemax.WithRemoteSchemas(remotes))
//	if err != nil {
//		// schemaDoc failed meta-schema validation or a $ref could not resolve
//	}
//	ok := schema.Validate(instance)
//
// A Compiler is the reusable, builder-configured form of the same entry
// point, useful when many schemas share one keyword registry or remote-schema
// set.
package jsonschemax
