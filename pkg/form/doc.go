// Package form binds submitted url.Values to string fields and runs their
// validation chains.
//
// A Form holds an ordered list of Fields. Process loads the submission,
// Validate runs every chain and Errors collects the messages:
//
//	tr, err := form.DefaultTranslator(ctx)
//	if err != nil {
//	    return err
//	}
//
//	f := form.MustNew(
//	    form.WithTranslator(tr),
//	    form.WithFields(
//	        form.NewField("username", form.WithValidators(
//	            validator.NewDataRequired(),
//	            validator.MustLength(3, 20),
//	        )),
//	        form.NewField("email", form.WithFilters(sanitizer.Trim, sanitizer.ToLower)),
//	    ),
//	)
//	f.Process(r.PostForm)
//	if !f.Validate(i18n.SetLocale(ctx, "de")) {
//	    return f.Err()
//	}
//
// Messages are translated into the language stored in the context, the
// form's WithLanguage, or the translator default, in that order. The built-in
// catalogs cover English, German and French.
package form
