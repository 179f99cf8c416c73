// Package lint checks the structure of an identifier tree.
//
// The only rule is the naming rule: every position below the root must carry
// a "name" entry. The value type of the entry is not checked here; decoding
// only uses string labels.
//
//	if err := lint.Validate(root); err != nil {
//		var verr *lint.ValidationError
//		if errors.As(err, &verr) {
//			fmt.Println(verr) // missing name for path: ["1"] :: {2 = {}}
//		}
//	}
package lint
