// Package jsonc provides the JSON capability bundle used to read
// config.jsonc files.
//
// The bundle is expressed as the Backend interface. Two implementations exist:
//
//   - Library binds libjson-c at runtime with dlopen/dlsym, so the binary does
//     not link against it and still runs on systems where it is missing.
//   - Native is a pure-Go implementation over hujson and gjson that mirrors the
//     json-c semantics relied upon by the config loader.
//
// Values are opaque handles. Only the root returned by Parse is owned by the
// caller; it must be released with Put, after which no descendant handle may
// be used.
//
// Example:
//
//	b, err := jsonc.Open(jsonc.BackendLibrary)
//	if err != nil {
//		return err
//	}
//	defer b.Close()
//
//	root := b.Parse(text)
//	if root == jsonc.Nil {
//		return errors.New("parse failed")
//	}
//	defer b.Put(root)
package jsonc
