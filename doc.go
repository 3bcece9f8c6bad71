// Package faqit answers free-text questions from a curated FAQ knowledge base.
//
// An Engine loads the FAQ corpus, makes sure an embedding of every question is
// available (reusing a persisted cache when it still matches the corpus and
// the embedding model), and answers questions by ranking FAQ entries by cosine
// similarity and asking a generative model to phrase an answer grounded in
// the best matches.
//
// Basic usage:
//
//	provider, _ := openai.NewProvider(ai.DefaultConfig())
//	store, _ := file.NewStore("faq_embeddings.cache")
//	engine, err := faqit.New(ctx, "faq.json", provider, store)
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	result := engine.AnswerQuestion(ctx, "How do I upload a photo?")
//	fmt.Println(result.Answer, result.Confidence)
package faqit
