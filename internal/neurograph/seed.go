package neurograph

// seedNodes is the initial progression graph: a beginner JavaScript
// curriculum of 15 concepts across two entry points (variables and
// conditionals). Only root concepts start Available; everything else is
// Blocked until its prerequisites are dominated.
var seedNodes = []Node{
	{
		ID:          "variables",
		Label:       "Variables",
		Description: "Naming and storing values",
		Status:      StatusAvailable,
		Unlocks:     []string{"data-types"},
		Questions: []Question{
			{
				ID:           "variables-1",
				Prompt:       "Which keyword declares a variable that can be reassigned?",
				Options:      []string{"const", "let", "static", "define"},
				CorrectIndex: 1,
				Explanation:  "let declares a block-scoped variable that can be reassigned; const cannot.",
			},
			{
				ID:           "variables-2",
				Prompt:       "What happens when you reassign a const binding?",
				Options:      []string{"The value updates", "It throws a TypeError", "It silently does nothing", "It creates a new variable"},
				CorrectIndex: 1,
				Explanation:  "Assignment to a constant binding throws a TypeError at runtime.",
			},
			{
				ID:           "variables-3",
				Prompt:       "Which of these is a valid variable name?",
				Options:      []string{"2count", "my-value", "_total", "new"},
				CorrectIndex: 2,
				Explanation:  "Identifiers may start with a letter, underscore or $, and cannot be reserved words.",
			},
			{
				ID:           "variables-4",
				Prompt:       "What is the value of a declared but unassigned let variable?",
				Options:      []string{"null", "0", "undefined", "NaN"},
				CorrectIndex: 2,
				Explanation:  "Declared variables hold undefined until a value is assigned.",
			},
			{
				ID:           "variables-5",
				Prompt:       "After `let x = 5; x = x + 1;`, what is x?",
				Options:      []string{"5", "6", "51", "undefined"},
				CorrectIndex: 1,
				Explanation:  "x is read, incremented, and the result 6 is stored back.",
			},
		},
	},
	{
		ID:          "data-types",
		Label:       "Data Types",
		Description: "Primitive and reference types",
		Status:      StatusBlocked,
		Unlocks:     []string{"operators"},
		Questions: []Question{
			{
				ID:           "data-types-1",
				Prompt:       "What does `typeof \"hello\"` evaluate to?",
				Options:      []string{"\"text\"", "\"string\"", "\"char\"", "\"object\""},
				CorrectIndex: 1,
			},
			{
				ID:           "data-types-2",
				Prompt:       "Which of these is NOT a primitive type?",
				Options:      []string{"number", "boolean", "array", "string"},
				CorrectIndex: 2,
				Explanation:  "Arrays are objects; the primitives are string, number, boolean, null, undefined, symbol and bigint.",
			},
			{
				ID:           "data-types-3",
				Prompt:       "What is the result of `typeof null`?",
				Options:      []string{"\"null\"", "\"undefined\"", "\"object\"", "\"none\""},
				CorrectIndex: 2,
				Explanation:  "typeof null returning \"object\" is a long-standing quirk of the language.",
			},
		},
	},
	{
		ID:          "operators",
		Label:       "Operators",
		Description: "Arithmetic, comparison and logic",
		Status:      StatusBlocked,
		Unlocks:     []string{"expressions"},
		Questions: []Question{
			{
				ID:           "operators-1",
				Prompt:       "What does the strict equality operator === check?",
				Options:      []string{"Value only", "Type only", "Value and type", "Reference only"},
				CorrectIndex: 2,
			},
			{
				ID:           "operators-2",
				Prompt:       "What is `7 % 3`?",
				Options:      []string{"1", "2", "2.33", "0"},
				CorrectIndex: 0,
				Explanation:  "% is the remainder operator: 7 divided by 3 leaves remainder 1.",
			},
			{
				ID:           "operators-3",
				Prompt:       "What does `true && false` evaluate to?",
				Options:      []string{"true", "false", "undefined", "1"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "expressions",
		Label:       "Expressions",
		Description: "Combining values and operators",
		Status:      StatusBlocked,
		Unlocks:     []string{"functions"},
		Questions: []Question{
			{
				ID:           "expressions-1",
				Prompt:       "What is `2 + 3 * 4`?",
				Options:      []string{"20", "14", "24", "9"},
				CorrectIndex: 1,
				Explanation:  "Multiplication binds tighter than addition, so this is 2 + 12.",
			},
			{
				ID:           "expressions-2",
				Prompt:       "What does `\"3\" + 4` evaluate to?",
				Options:      []string{"7", "\"34\"", "34", "NaN"},
				CorrectIndex: 1,
				Explanation:  "With a string operand, + concatenates instead of adding.",
			},
			{
				ID:           "expressions-3",
				Prompt:       "Which expression evaluates to a boolean?",
				Options:      []string{"5 + 5", "\"a\" + \"b\"", "10 > 3", "x = 1"},
				CorrectIndex: 2,
			},
		},
	},
	{
		ID:          "conditionals",
		Label:       "Conditionals",
		Description: "Branching with if/else",
		Status:      StatusAvailable,
		Unlocks:     []string{"loops"},
		Questions: []Question{
			{
				ID:           "conditionals-1",
				Prompt:       "When does an else branch run?",
				Options:      []string{"Always", "When the if condition is falsy", "When the if condition is truthy", "Never"},
				CorrectIndex: 1,
			},
			{
				ID:           "conditionals-2",
				Prompt:       "Which value is falsy?",
				Options:      []string{"\"0\"", "[]", "0", "\"false\""},
				CorrectIndex: 2,
				Explanation:  "The falsy values are false, 0, \"\", null, undefined and NaN; \"0\" and [] are truthy.",
			},
			{
				ID:           "conditionals-3",
				Prompt:       "What does `x > 10 ? \"big\" : \"small\"` use?",
				Options:      []string{"A switch statement", "The ternary operator", "A for loop", "Short-circuiting"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "loops",
		Label:       "Loops",
		Description: "Repeating work with for and while",
		Status:      StatusBlocked,
		Unlocks:     []string{"arrays"},
		Questions: []Question{
			{
				ID:           "loops-1",
				Prompt:       "How many times does `for (let i = 0; i < 3; i++)` run its body?",
				Options:      []string{"2", "3", "4", "Forever"},
				CorrectIndex: 1,
			},
			{
				ID:           "loops-2",
				Prompt:       "What does the break statement do inside a loop?",
				Options:      []string{"Skips one iteration", "Restarts the loop", "Exits the loop immediately", "Pauses execution"},
				CorrectIndex: 2,
			},
			{
				ID:           "loops-3",
				Prompt:       "When does a while loop check its condition?",
				Options:      []string{"Before each iteration", "After each iteration", "Only once", "Never"},
				CorrectIndex: 0,
				Explanation:  "while checks up front; do...while checks after the first pass.",
			},
		},
	},
	{
		ID:          "arrays",
		Label:       "Arrays",
		Description: "Ordered collections of values",
		Status:      StatusBlocked,
		Unlocks:     []string{"array-methods"},
		Questions: []Question{
			{
				ID:           "arrays-1",
				Prompt:       "What index does the first element of an array have?",
				Options:      []string{"1", "0", "-1", "It depends on the array"},
				CorrectIndex: 1,
			},
			{
				ID:           "arrays-2",
				Prompt:       "What is `[1, 2, 3].length`?",
				Options:      []string{"2", "3", "4", "undefined"},
				CorrectIndex: 1,
			},
			{
				ID:           "arrays-3",
				Prompt:       "What does `arr[arr.length - 1]` access?",
				Options:      []string{"The first element", "The last element", "One past the end", "The array's length"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "array-methods",
		Label:       "Array Methods",
		Description: "map, filter and friends",
		Status:      StatusBlocked,
		Unlocks:     []string{"objects"},
		Questions: []Question{
			{
				ID:           "array-methods-1",
				Prompt:       "What does `[1, 2, 3].map(x => x * 2)` return?",
				Options:      []string{"[2, 4, 6]", "[1, 2, 3]", "6", "[1, 4, 9]"},
				CorrectIndex: 0,
			},
			{
				ID:           "array-methods-2",
				Prompt:       "Which method keeps only elements that pass a test?",
				Options:      []string{"map", "reduce", "filter", "forEach"},
				CorrectIndex: 2,
			},
			{
				ID:           "array-methods-3",
				Prompt:       "What does push do?",
				Options:      []string{"Removes the last element", "Adds an element to the end", "Adds an element to the start", "Sorts the array"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "functions",
		Label:       "Functions",
		Description: "Reusable blocks of behavior",
		Status:      StatusBlocked,
		Unlocks:     []string{"parameters"},
		Questions: []Question{
			{
				ID:           "functions-1",
				Prompt:       "Which keyword defines a named function?",
				Options:      []string{"func", "def", "function", "fn"},
				CorrectIndex: 2,
			},
			{
				ID:           "functions-2",
				Prompt:       "What does calling a function that has no return statement give you?",
				Options:      []string{"null", "0", "undefined", "An error"},
				CorrectIndex: 2,
			},
			{
				ID:           "functions-3",
				Prompt:       "What is `(x) => x + 1` an example of?",
				Options:      []string{"A generator", "An arrow function", "A class method", "A callback registry"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "parameters",
		Label:       "Parameters",
		Description: "Passing data into functions",
		Status:      StatusBlocked,
		Unlocks:     []string{"return", "scope"},
		Questions: []Question{
			{
				ID:           "parameters-1",
				Prompt:       "What is the value of a parameter the caller omits?",
				Options:      []string{"null", "undefined", "0", "The call fails"},
				CorrectIndex: 1,
			},
			{
				ID:           "parameters-2",
				Prompt:       "What does `function greet(name = \"world\")` declare?",
				Options:      []string{"A rest parameter", "A default parameter", "A named argument", "A type annotation"},
				CorrectIndex: 1,
			},
			{
				ID:           "parameters-3",
				Prompt:       "What does the rest syntax `...args` collect?",
				Options:      []string{"The first argument", "All remaining arguments into an array", "The function's name", "Only named arguments"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "return",
		Label:       "Return",
		Description: "Getting values out of functions",
		Status:      StatusBlocked,
		Unlocks:     []string{"closures"},
		Questions: []Question{
			{
				ID:           "return-1",
				Prompt:       "What happens to code after a return statement in the same function body?",
				Options:      []string{"It runs normally", "It never runs", "It runs on the next call", "It throws an error"},
				CorrectIndex: 1,
			},
			{
				ID:           "return-2",
				Prompt:       "What does `return;` with no value return?",
				Options:      []string{"null", "0", "undefined", "The last expression"},
				CorrectIndex: 2,
			},
			{
				ID:           "return-3",
				Prompt:       "How many values can a function return directly?",
				Options:      []string{"One", "Two", "Any number", "None"},
				CorrectIndex: 0,
				Explanation:  "A function returns a single value; bundle several in an array or object.",
			},
		},
	},
	{
		ID:          "scope",
		Label:       "Scope",
		Description: "Where names are visible",
		Status:      StatusBlocked,
		Unlocks:     []string{"closures"},
		Questions: []Question{
			{
				ID:           "scope-1",
				Prompt:       "Where is a let variable declared inside a block visible?",
				Options:      []string{"Everywhere", "Only within that block", "Only in the file", "Only inside functions"},
				CorrectIndex: 1,
			},
			{
				ID:           "scope-2",
				Prompt:       "What can an inner function see?",
				Options:      []string{"Only its own variables", "Variables of enclosing scopes", "Only global variables", "Nothing outside its parameters"},
				CorrectIndex: 1,
			},
			{
				ID:           "scope-3",
				Prompt:       "What is variable shadowing?",
				Options:      []string{"Deleting a variable", "An inner declaration hiding an outer one with the same name", "Copying a variable", "Declaring without let"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "objects",
		Label:       "Objects",
		Description: "Key-value collections",
		Status:      StatusBlocked,
		Unlocks:     []string{"properties", "object-methods"},
		Questions: []Question{
			{
				ID:           "objects-1",
				Prompt:       "Which literal creates an empty object?",
				Options:      []string{"[]", "{}", "()", "new Array()"},
				CorrectIndex: 1,
			},
			{
				ID:           "objects-2",
				Prompt:       "In `{ name: \"Ada\" }`, what is name?",
				Options:      []string{"A value", "A key", "A method", "A class"},
				CorrectIndex: 1,
			},
			{
				ID:           "objects-3",
				Prompt:       "What does `user.age` do when age was never set?",
				Options:      []string{"Throws an error", "Returns undefined", "Returns null", "Creates the property"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "properties",
		Label:       "Properties",
		Description: "Reading and writing object fields",
		Status:      StatusBlocked,
		Unlocks:     []string{},
		Questions: []Question{
			{
				ID:           "properties-1",
				Prompt:       "Which syntax accesses a property whose name is stored in a variable?",
				Options:      []string{"obj.key", "obj[key]", "obj->key", "obj::key"},
				CorrectIndex: 1,
			},
			{
				ID:           "properties-2",
				Prompt:       "What does `delete user.age` do?",
				Options:      []string{"Sets age to undefined", "Removes the age property", "Deletes the whole object", "Nothing"},
				CorrectIndex: 1,
			},
			{
				ID:           "properties-3",
				Prompt:       "What does `\"age\" in user` check?",
				Options:      []string{"Whether age is truthy", "Whether the property exists", "Whether age is a number", "Whether user is an object"},
				CorrectIndex: 1,
			},
		},
	},
	{
		ID:          "object-methods",
		Label:       "Object Methods",
		Description: "Functions attached to objects",
		Status:      StatusBlocked,
		Unlocks:     []string{"json"},
		Questions: []Question{
			{
				ID:           "object-methods-1",
				Prompt:       "What is a method?",
				Options:      []string{"A standalone function", "A function stored as an object property", "A class definition", "A loop inside an object"},
				CorrectIndex: 1,
			},
			{
				ID:           "object-methods-2",
				Prompt:       "Inside a method called as `user.greet()`, what does this refer to?",
				Options:      []string{"The global object", "user", "greet", "undefined"},
				CorrectIndex: 1,
			},
			{
				ID:           "object-methods-3",
				Prompt:       "What does `Object.keys(user)` return?",
				Options:      []string{"An array of property names", "An array of values", "The number of properties", "A copy of the object"},
				CorrectIndex: 0,
			},
		},
	},
}

// nodeTemplates defines nodes that are not part of the initial graph but
// are instantiated lazily when a completed node's Unlocks references them.
// Templates are immutable seed data; instantiation clones them.
var nodeTemplates = map[string]Node{
	"closures": {
		ID:          "closures",
		Label:       "Closures",
		Description: "Functions that capture their environment",
		Status:      StatusBlocked,
		Unlocks:     []string{},
		Questions: []Question{
			{
				ID:           "closures-1",
				Prompt:       "What does a closure capture?",
				Options:      []string{"A copy of all globals", "Variables from its defining scope", "Only its parameters", "The call stack"},
				CorrectIndex: 1,
			},
			{
				ID:           "closures-2",
				Prompt:       "A counter function returned from makeCounter keeps its count between calls because of:",
				Options:      []string{"Hoisting", "The closure over its outer variable", "Global state", "Recursion"},
				CorrectIndex: 1,
			},
			{
				ID:           "closures-3",
				Prompt:       "Two closures created by separate calls to the same factory share their captured variables.",
				Options:      []string{"True", "False", "Only with var", "Only with const"},
				CorrectIndex: 1,
				Explanation:  "Each call creates a fresh scope, so each closure captures its own variables.",
			},
		},
	},
	"json": {
		ID:          "json",
		Label:       "JSON",
		Description: "Serializing objects as text",
		Status:      StatusBlocked,
		Unlocks:     []string{},
		Questions: []Question{
			{
				ID:           "json-1",
				Prompt:       "Which function turns an object into a JSON string?",
				Options:      []string{"JSON.parse", "JSON.stringify", "Object.freeze", "String(obj)"},
				CorrectIndex: 1,
			},
			{
				ID:           "json-2",
				Prompt:       "Which of these is valid JSON?",
				Options:      []string{"{name: \"Ada\"}", "{\"name\": \"Ada\"}", "{'name': 'Ada'}", "(\"name\": \"Ada\")"},
				CorrectIndex: 1,
				Explanation:  "JSON requires double-quoted keys and strings.",
			},
			{
				ID:           "json-3",
				Prompt:       "What does JSON.parse return for '[1, 2, 3]'?",
				Options:      []string{"A string", "An array", "An object with numeric keys", "An error"},
				CorrectIndex: 1,
			},
		},
	},
}

// SeedGraph returns a deep copy of the seed definition. Each call yields
// an independent graph, so resetting a session is just replacing its
// snapshot with a fresh SeedGraph.
func SeedGraph() Graph {
	g := Graph{Nodes: seedNodes}
	return g.Clone()
}

// Template returns a deep copy of the template for id, if one exists.
func Template(id string) (Node, bool) {
	tmpl, ok := nodeTemplates[id]
	if !ok {
		return Node{}, false
	}
	return tmpl.clone(), true
}
