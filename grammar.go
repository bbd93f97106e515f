package exprcheck

// Grammar is the fixed grammar the validator accepts, by decreasing
// binding looseness. Binary operators are left-associative; unary
// minus binds tighter than any binary operator.
const Grammar = `expr   := term (('+' | '-') term)*
term   := factor (('*' | '/') factor)*
factor := '-' factor
        | NUMBER
        | '(' expr ')'

NUMBER := digits? ('.' digits?)? (('e'|'E') sign? digits)?
          (at least one digit required)

Inline whitespace (space, tab) between tokens is ignored.`
