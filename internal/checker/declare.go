package checker

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/infer"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

func locOf(n ast.Node) *diagnostic.Location {
	pos := n.Position()
	return &diagnostic.Location{Line: pos.Line, Column: pos.Column, File: pos.File, Valid: true}
}

func duplicateDiag(err error, namespace, name string, loc *diagnostic.Location) *diagnostic.Diagnostic {
	if err == nil {
		return nil
	}
	return diagnostic.NewDuplicateDefinition(namespace, name, loc)
}

// declareTypeDecl registers td's header first (so the union's own name
// is visible to its own variant field types, letting a recursive type
// like a List variant holding itself resolve cleanly), resolves each
// variant's field types, then finalizes.
func (ck *Checker) declareTypeDecl(td *ast.TypeDecl, env *tenv.Environment) *diagnostic.Diagnostic {
	def, err := env.DeclareTypeHeader(td.Name, td.TypeParams)
	if err != nil {
		return duplicateDiag(err, "type", td.Name, locOf(td))
	}

	typeParams := make(map[string]bool, len(td.TypeParams))
	for _, p := range td.TypeParams {
		typeParams[p] = true
	}

	variants := make([]*tenv.VariantDef, len(td.Variants))
	for i, v := range td.Variants {
		fields := make([]types.Type, len(v.Fields))
		for j, f := range v.Fields {
			resolved, diag := infer.ResolveTypeExpr(f, env, typeParams)
			if diag != nil {
				return diag
			}
			fields[j] = resolved
		}
		variants[i] = &tenv.VariantDef{Name: v.Name, FieldTypes: fields}
	}

	if err := env.FinalizeTypeVariants(def, variants); err != nil {
		name := td.Name
		if dup, ok := err.(*tenv.DuplicateDefinitionError); ok {
			name = dup.Name
		}
		return duplicateDiag(err, "variant", name, locOf(td))
	}
	return nil
}

// declareFunctionSignature resolves fd's parameter/return type
// annotations (unannotated ones become fresh TypeVars, resolved later by
// the body's substitution) and registers the signature so forward
// references and recursive calls work.
func (ck *Checker) declareFunctionSignature(fd *ast.FunctionDecl, env *tenv.Environment) *diagnostic.Diagnostic {
	typeParams := make(map[string]bool, len(fd.TypeParams))
	for _, p := range fd.TypeParams {
		typeParams[p] = true
	}

	paramTypes := make([]types.Type, len(fd.Params))
	for i, p := range fd.Params {
		if p.Type == nil {
			paramTypes[i] = types.NewTypeVar()
			continue
		}
		resolved, diag := infer.ResolveTypeExpr(p.Type, env, typeParams)
		if diag != nil {
			return diag
		}
		paramTypes[i] = resolved
	}

	var returnT types.Type = types.NewTypeVar()
	if fd.ReturnType != nil {
		resolved, diag := infer.ResolveTypeExpr(fd.ReturnType, env, typeParams)
		if diag != nil {
			return diag
		}
		returnT = resolved
	}

	sig := &tenv.FunctionSignature{
		Name:       fd.Name,
		TypeParams: fd.TypeParams,
		ParamTypes: paramTypes,
		ReturnType: returnT,
	}
	if err := env.DeclareFunction(sig); err != nil {
		return duplicateDiag(err, "function", fd.Name, locOf(fd))
	}
	return nil
}
